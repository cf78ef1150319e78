package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDomainValidatorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(DomainValidatorMiddleware("jokes.example.com"))
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		host     string
		expected int
	}{
		{"matching host", "jokes.example.com", http.StatusOK},
		{"matching host with port", "jokes.example.com:3000", http.StatusOK},
		{"wrong host", "evil.example.com", http.StatusForbidden},
		{"empty host", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tt.host
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
