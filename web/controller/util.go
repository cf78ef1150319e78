package controller

import (
	"net"
	"net/http"
	"strings"

	"jokes-web/config"
	"jokes-web/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// pureJsonMsg sends a JSON message response with a custom status code, used
// for AJAX callers.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders an HTML template with status 200.
func html(c *gin.Context, name string, title string, data gin.H) {
	htmlStatus(c, http.StatusOK, name, title, data)
}

// htmlStatus renders an HTML template with the provided status, data and title.
func htmlStatus(c *gin.Context, status int, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		var err error
		host, _, err = net.SplitHostPort(c.Request.Host)
		if err != nil {
			host = c.Request.Host
		}
	}
	data["host"] = host
	data["request_uri"] = c.Request.RequestURI
	c.HTML(status, name, getContext(data))
}

// renderError renders the error page (or a JSON envelope for AJAX callers)
// with the given status and message.
func renderError(c *gin.Context, status int, message string) {
	if isAjax(c) {
		pureJsonMsg(c, status, false, message)
		return
	}
	htmlStatus(c, status, "error.html", "Error", gin.H{
		"status":  status,
		"message": message,
	})
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// NotFoundHandler renders the 404 page for unmatched routes.
func NotFoundHandler(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page not found")
}

// PanicHandler renders the opaque 500 page for recovered panics; no internal
// detail reaches the client.
func PanicHandler(c *gin.Context, _ any) {
	renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
}
