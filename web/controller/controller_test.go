package controller

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jokes-web/database"
	"jokes-web/logger"
	"jokes-web/util/common"
	"jokes-web/web/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"gorm.io/gorm"
)

const testSessionSecret = "test-session-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

type testApp struct {
	engine      *gin.Engine
	db          *gorm.DB
	userService *service.UserService
	jokeService *service.JokeService
}

// setupApp wires a gin engine the way web.Server does, against a throwaway
// sqlite database.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.InitDB(dbPath)
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})

	userService := service.NewUserService(db)
	jokeService := service.NewJokeService(db)

	engine := gin.New()
	engine.Use(gin.CustomRecovery(PanicHandler))

	store := cookie.NewStore([]byte(testSessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions("jokes_session", store))
	engine.SetFuncMap(template.FuncMap{"timeAgo": common.FormatTimeAgo})
	engine.LoadHTMLGlob("../html/*.html")

	g := engine.Group("/")
	NewIndexController(g, userService)
	NewJokeController(g, userService, jokeService)
	engine.NoRoute(NotFoundHandler)

	return &testApp{
		engine:      engine,
		db:          db,
		userService: userService,
		jokeService: jokeService,
	}
}

func (app *testApp) clearJokes(t *testing.T) {
	t.Helper()
	if err := app.db.Exec("DELETE FROM jokes").Error; err != nil {
		t.Fatalf("clear jokes: %v", err)
	}
}

// do runs a request through the engine, attaching any session cookies.
func (app *testApp) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

// doAjax runs a request flagged as XMLHttpRequest.
func (app *testApp) doAjax(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

// login registers a fresh user through the real flow and returns the session
// cookies together with the user's id.
func (app *testApp) register(t *testing.T, username, password string) ([]*http.Cookie, int) {
	t.Helper()

	w := app.do(t, http.MethodPost, "/login", url.Values{
		"loginType": {"register"},
		"username":  {username},
		"password":  {password},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("register %q: expected redirect, got %d: %s", username, w.Code, w.Body.String())
	}

	user, err := app.userService.GetUserByUsername(username)
	if err != nil {
		t.Fatalf("registered user %q not stored: %v", username, err)
	}
	return w.Result().Cookies(), user.Id
}
