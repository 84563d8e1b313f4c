package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusController struct{}

func (statusController) Register(route *gin.RouterGroup) {
	route.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	route.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	route.GET("/boom", func(c *gin.Context) { panic("boom") })
}

type lineLogger struct {
	sync.Mutex
	lines []string
}

func (l *lineLogger) add(s string) {
	l.Lock()
	defer l.Unlock()
	l.lines = append(l.lines, s)
}

func (l *lineLogger) Info(msg string)    { l.add("INFO " + msg) }
func (l *lineLogger) Warning(msg string) { l.add("WARNING " + msg) }
func (l *lineLogger) Error(msg string)   { l.add("ERROR " + msg) }

func TestRouter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &lineLogger{}
	h := NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []i.Controller{statusController{}},
		Logger:      log,
	}).Handler()

	cases := []struct {
		path   string
		status int
		level  string
	}{
		{"/api/v1/ok", http.StatusOK, "INFO"},
		{"/api/v1/bad", http.StatusBadRequest, "WARNING"},
		{"/api/v1/boom", http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, rec.Code)

			require.NotEmpty(t, log.lines)
			last := log.lines[len(log.lines)-1]
			assert.True(t, strings.HasPrefix(last, tc.level+" GET "+tc.path), last)
		})
	}
}
