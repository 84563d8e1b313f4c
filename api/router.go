package api

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	svc_i "github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	logger      svc_i.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Logger      svc_i.Logger // Request logger; gin's default logger when nil
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      config.Logger,
	}
}

// Handler builds the gin engine with every controller registered under baseURL/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	if r.logger != nil {
		router.Use(requestLogger(r.logger))
	} else {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}

// requestLogger logs one line per request through l.
func requestLogger(l svc_i.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		msg := fmt.Sprintf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(begin))
		switch status := c.Writer.Status(); {
		case status >= 500:
			l.Error(msg)
		case status >= 400:
			l.Warning(msg)
		default:
			l.Info(msg)
		}
	}
}
