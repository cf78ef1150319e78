package controller

import (
	"fmt"
	"net/http"

	"jokes-web/database"
	"jokes-web/database/model"
	"jokes-web/logger"
	"jokes-web/web/service"
	"jokes-web/web/session"

	"github.com/gin-gonic/gin"
)

const latestJokesCount = 5

// JokeController handles the joke listing, detail, random, creation and
// deletion routes.
type JokeController struct {
	BaseController

	userService *service.UserService
	jokeService *service.JokeService
}

// NewJokeController creates a new JokeController and initializes its routes.
func NewJokeController(g *gin.RouterGroup, userService *service.UserService, jokeService *service.JokeService) *JokeController {
	a := &JokeController{
		userService: userService,
		jokeService: jokeService,
	}
	a.initRouter(g)
	return a
}

func (a *JokeController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/jokes")

	g.GET("", a.index)
	g.GET("/new", a.checkLogin, a.newJoke)
	g.GET("/:jokeId", a.detail)

	g.POST("/new", a.checkLogin, a.createJoke)
	g.POST("/:jokeId", a.checkLogin, a.deleteJoke)
}

// currentUser resolves the session to a stored user. A session pointing at a
// deleted account reads as logged out.
func (a *JokeController) currentUser(c *gin.Context) *model.User {
	userId, ok := session.GetUserId(c)
	if !ok {
		return nil
	}
	user, err := a.userService.GetUser(userId)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("resolve session user err:", err)
		}
		return nil
	}
	return user
}

// index shows the jokes overview: the five most recent jokes, the greeting
// for the logged-in user and one joke picked at random.
func (a *JokeController) index(c *gin.Context) {
	jokes, err := a.jokeService.GetLatestJokes(latestJokesCount)
	if err != nil {
		logger.Warning("list jokes err:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}

	randomJoke, err := a.jokeService.GetRandomJoke()
	if err != nil {
		if database.IsNotFound(err) {
			renderError(c, http.StatusNotFound, "There are no jokes to display.")
			return
		}
		logger.Warning("random joke err:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}

	html(c, "jokes.html", "Remix Jokes | Jokes", gin.H{
		"user":       a.currentUser(c),
		"jokes":      jokes,
		"randomJoke": randomJoke,
	})
}

// newJoke renders the submission form. checkLogin has already run.
func (a *JokeController) newJoke(c *gin.Context) {
	html(c, "new_joke.html", "Remix Jokes | Add joke", gin.H{
		"user":        a.currentUser(c),
		"name":        "",
		"content":     "",
		"fieldErrors": map[string]string{},
	})
}

// createJoke validates the submission and persists it tied to the caller.
func (a *JokeController) createJoke(c *gin.Context) {
	userId, _ := session.GetUserId(c)

	var form JokeForm
	if err := c.ShouldBind(&form); err != nil {
		fe := fieldErrors(err)
		if fe == nil {
			fe = map[string]string{}
		}
		htmlStatus(c, http.StatusBadRequest, "new_joke.html", "Remix Jokes | Add joke", gin.H{
			"user":        a.currentUser(c),
			"fieldErrors": fe,
			"name":        c.PostForm("name"),
			"content":     c.PostForm("content"),
		})
		return
	}

	joke, err := a.jokeService.CreateJoke(form.Name, form.Content, userId)
	if err != nil {
		logger.Warning("create joke err:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}
	c.Redirect(http.StatusFound, "/jokes/"+joke.Id)
}

// detail shows a single joke; the owner additionally gets the delete control.
func (a *JokeController) detail(c *gin.Context) {
	joke, err := a.jokeService.GetJoke(c.Param("jokeId"))
	if err != nil {
		if database.IsNotFound(err) {
			renderError(c, http.StatusNotFound, "What a joke! Not found.")
			return
		}
		logger.Warning("get joke err:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}

	user := a.currentUser(c)
	isOwner := user != nil && joke.JokesterId != nil && *joke.JokesterId == user.Id
	html(c, "joke.html", fmt.Sprintf("Remix Jokes | %s", joke.Name), gin.H{
		"user":    user,
		"joke":    joke,
		"isOwner": isOwner,
	})
}

// deleteJoke handles the _method=delete form posted from the detail page.
// Only the owner may delete a joke.
func (a *JokeController) deleteJoke(c *gin.Context) {
	if method := c.PostForm("_method"); method != "delete" {
		renderError(c, http.StatusBadRequest, fmt.Sprintf("The _method %s is not supported", method))
		return
	}

	joke, err := a.jokeService.GetJoke(c.Param("jokeId"))
	if err != nil {
		if database.IsNotFound(err) {
			renderError(c, http.StatusNotFound, "Can't delete what does not exist")
			return
		}
		logger.Warning("get joke err:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}

	userId, _ := session.GetUserId(c)
	if joke.JokesterId == nil || *joke.JokesterId != userId {
		renderError(c, http.StatusForbidden, "Pssh, nice try. That's not your joke")
		return
	}

	if err := a.jokeService.DeleteJoke(joke.Id); err != nil {
		logger.Warning("delete joke err:", err)
		renderError(c, http.StatusInternalServerError, "Something unexpected went wrong")
		return
	}
	c.Redirect(http.StatusFound, "/jokes")
}
