// Package controller provides the HTTP request handlers of the jokes web
// application: landing page, login and registration, and the joke pages.
package controller

import (
	"net/http"
	"net/url"

	"jokes-web/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including
// authentication checks.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication. Browser
// requests are redirected to the login page carrying the original path as
// redirectTo; AJAX requests get a 401.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "You must be logged in to do that")
		} else {
			c.Redirect(http.StatusFound, "/login?redirectTo="+url.QueryEscape(c.Request.URL.Path))
		}
		c.Abort()
	} else {
		c.Next()
	}
}
