package web

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-pagecatalog/internal/config"
	"github.com/go-while/go-pagecatalog/internal/locale"
)

// WebServer represents the web server
type WebServer struct {
	Router     *gin.Engine
	Config     *config.WebConfig
	Locale     *locale.Locale
	StartTime  time.Time // Track server start time for uptime calculations
	templates  map[string]*template.Template
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a new web server instance
func NewServer(webconfig *config.WebConfig) *WebServer {
	// Set Gin to release mode for production
	if !webconfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Trust reverse proxy headers only from local and private networks
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	server := &WebServer{
		Router:    router,
		Config:    webconfig,
		Locale:    locale.Lookup(webconfig.Locale),
		templates: loadTemplates(),
	}

	if webconfig.ApacheLog {
		router.Use(server.ApacheLogFormat())
	} else {
		router.Use(gin.Logger())
	}
	router.Use(secure.New(secureConfig))

	server.httpServer = &http.Server{
		Addr:              ":" + strconv.Itoa(webconfig.ListenPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Raw pages and auxiliary assets, both straight from disk
	s.Router.Static("/pages", s.Config.PagesDir)
	s.Router.Static("/static", s.Config.StaticDir)

	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	s.Router.GET("/api", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api/files")
	})
	s.Router.GET("/api/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api/files")
	})
	s.Router.GET("/api/files", s.listFiles)

	s.Router.GET("/", s.catalogPage)

	s.Router.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, s.Locale.Strings.NotFound, c.Request.URL.Path)
	})
}

// Listen binds the configured port without serving yet
func (s *WebServer) Listen() error {
	if s.Config.SSL && (s.Config.CertFile == "" || s.Config.KeyFile == "") {
		return fmt.Errorf("SSL enabled but cert_file or key_file not specified in config")
	}
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	return nil
}

// Serve handles requests on the bound listener until Shutdown.
// It returns http.ErrServerClosed after a clean shutdown.
func (s *WebServer) Serve() error {
	if s.listener == nil {
		return fmt.Errorf("serve called before listen")
	}
	s.StartTime = time.Now()
	if s.Config.SSL {
		log.Printf("[WEB]: Starting HTTPS server on %s", s.listener.Addr())
		return s.httpServer.ServeTLS(s.listener, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("[WEB]: Starting HTTP server on %s", s.listener.Addr())
	return s.httpServer.Serve(s.listener)
}

// Start binds the port and serves, blocking until the server stops
func (s *WebServer) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops accepting connections and waits for active requests until ctx expires
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// URL returns the address users should open in a browser
func (s *WebServer) URL() string {
	protocol := "http"
	if s.Config.SSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://localhost:%d", protocol, s.Config.ListenPort)
}

// ApacheLogFormat logs requests in the Apache combined log format
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
