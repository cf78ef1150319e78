// Package database bootstraps the sqlite database used by the jokes
// application: connection setup, pragmas, migrations and seed data.
package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"jokes-web/config"
	"jokes-web/database/model"
	"jokes-web/util/crypto"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	seedUsername = "nata"
	seedPassword = "password"
)

func initModels(db *gorm.DB) error {
	models := []any{
		&model.User{},
		&model.Joke{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initSeedData inserts a demo user and a handful of jokes the first time the
// database comes up empty.
func initSeedData(db *gorm.DB) error {
	empty, err := isTableEmpty(db, "jokes")
	if err != nil {
		log.Printf("Error checking if jokes table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	hash, err := crypto.HashPasswordAsBcrypt(seedPassword)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     seedUsername,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	for _, j := range seedJokes() {
		joke := &model.Joke{
			Id:         uuid.NewString(),
			Name:       j.Name,
			Content:    j.Content,
			JokesterId: &user.Id,
		}
		if err := db.Create(joke).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedJokes() []model.Joke {
	return []model.Joke{
		{Name: "Road worker", Content: `I never wanted to believe that my Dad was stealing from his job as a road worker. But when I got home, all the signs were there.`},
		{Name: "Frisbee", Content: `I was wondering why the frisbee was getting bigger, then it hit me.`},
		{Name: "Trees", Content: `Why do trees seem suspicious on sunny days? Dunno, they're just a bit shady.`},
		{Name: "Skeletons", Content: `Why don't skeletons ride roller coasters? They don't have the stomach for it.`},
		{Name: "Hippos", Content: `Why don't you find hippopotamuses hiding in trees? They're really good at it.`},
		{Name: "Dinner", Content: `What did one plate say to the other plate? Dinner is on me!`},
		{Name: "Elevator", Content: `My first time using an elevator was an uplifting experience. The second time let me down.`},
	}
}

func isTableEmpty(db *gorm.DB, tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens (creating if needed) the sqlite database at dbPath, applies
// pragmas, migrates the schema and seeds demo data.
func InitDB(dbPath string) (*gorm.DB, error) {
	dir := path.Dir(dbPath)
	if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
		return nil, err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA cache_size = -64000;",
		"PRAGMA temp_store = MEMORY;",
		"PRAGMA foreign_keys = ON;",
	} {
		if _, err = sqlDB.Exec(pragma); err != nil {
			return nil, err
		}
	}

	if err := initModels(db); err != nil {
		return nil, err
	}
	if err := initSeedData(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB checkpoints the WAL and closes the underlying connection.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(db); err != nil {
		log.Printf("error executing checkpoint: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Checkpoint flushes the sqlite WAL back into the main database file.
func Checkpoint(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
