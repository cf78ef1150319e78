// Package config exposes the environment-driven configuration of the jokes
// web application. All values come from JOKES_* environment variables with
// sensible defaults for local development.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("JOKES_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("JOKES_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("JOKES_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("JOKES_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("JOKES_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("JOKES_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 3000
	}
	return port
}

// GetSessionSecret returns the key used to sign session cookies. The server
// refuses to start without it.
func GetSessionSecret() string {
	return os.Getenv("JOKES_SESSION_SECRET")
}

// GetWebDomain returns the optional host the app is pinned to. Empty means
// no host validation.
func GetWebDomain() string {
	return os.Getenv("JOKES_DOMAIN")
}

func GetCertFile() string {
	return os.Getenv("JOKES_CERT_FILE")
}

func GetKeyFile() string {
	return os.Getenv("JOKES_KEY_FILE")
}
