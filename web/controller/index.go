package controller

import (
	"fmt"
	"net/http"

	"jokes-web/database"
	"jokes-web/logger"
	"jokes-web/web/service"
	"jokes-web/web/session"

	"github.com/gin-gonic/gin"
)

const defaultRedirect = "/jokes"

// IndexController handles the landing page and the login, register and
// logout flows.
type IndexController struct {
	BaseController

	userService *service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup, userService *service.UserService) *IndexController {
	a := &IndexController{userService: userService}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.login)

	g.POST("/login", a.postLogin)
	g.POST("/logout", a.logout)
}

// index renders the static landing page.
func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", "Remix Jokes", nil)
}

// login renders the combined login/register form. A redirectTo query
// parameter is carried through the form as a hidden field.
func (a *IndexController) login(c *gin.Context) {
	html(c, "login.html", "Remix Jokes | Login", gin.H{
		"redirectTo":  c.Query("redirectTo"),
		"username":    "",
		"loginType":   "",
		"formError":   "",
		"fieldErrors": map[string]string{},
	})
}

// postLogin runs the loginType state machine: validate the form, then either
// authenticate or register, and finally issue the session cookie.
func (a *IndexController) postLogin(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		a.renderLogin(c, loginPage{
			fieldErrors: fieldErrors(err),
		})
		return
	}

	redirectTo := form.RedirectTo
	if redirectTo == "" {
		redirectTo = defaultRedirect
	}

	switch form.LoginType {
	case "login":
		user := a.userService.CheckUser(form.Username, form.Password)
		if user == nil {
			logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
			a.renderLogin(c, loginPage{
				formError: "Username/Password combination is incorrect",
			})
			return
		}
		a.createUserSession(c, user.Id, redirectTo)

	case "register":
		_, err := a.userService.GetUserByUsername(form.Username)
		if err == nil {
			a.renderLogin(c, loginPage{
				formError: fmt.Sprintf("User with username %s already exists", form.Username),
			})
			return
		}
		if !database.IsNotFound(err) {
			logger.Warning("register lookup err:", err)
			renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
			return
		}

		user, err := a.userService.CreateUser(form.Username, form.Password)
		if err != nil {
			logger.Warning("create user err:", err)
			a.renderLogin(c, loginPage{
				formError: "Something went wrong trying to create a new user",
			})
			return
		}
		logger.Infof("registered new user %q", user.Username)
		a.createUserSession(c, user.Id, redirectTo)

	default:
		a.renderLogin(c, loginPage{
			formError: "Login type invalid",
		})
	}
}

// createUserSession stores the user id in the session cookie and redirects.
func (a *IndexController) createUserSession(c *gin.Context, userId int, redirectTo string) {
	if err := session.SetLoginUser(c, userId); err != nil {
		logger.Warning("unable to save session:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}
	c.Redirect(http.StatusFound, redirectTo)
}

// logout clears the session cookie and sends the user home.
func (a *IndexController) logout(c *gin.Context) {
	if userId, ok := session.GetUserId(c); ok {
		logger.Infof("user %d logged out", userId)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// loginPage carries the re-render state of a failed login submission. The
// password is deliberately absent.
type loginPage struct {
	formError   string
	fieldErrors map[string]string
}

// renderLogin re-renders the login form with a 400, preserving the submitted
// username, loginType and redirectTo but never the password.
func (a *IndexController) renderLogin(c *gin.Context, page loginPage) {
	formError := page.formError
	fe := page.fieldErrors
	if fe == nil {
		fe = map[string]string{}
		if formError == "" {
			formError = "Form not submitted correctly"
		}
	}
	htmlStatus(c, http.StatusBadRequest, "login.html", "Remix Jokes | Login", gin.H{
		"formError":   formError,
		"fieldErrors": fe,
		"username":    c.PostForm("username"),
		"loginType":   c.PostForm("loginType"),
		"redirectTo":  c.PostForm("redirectTo"),
	})
}
