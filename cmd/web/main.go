// HTML page catalog web server for go-pagecatalog
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/go-while/go-pagecatalog/internal/config"
	"github.com/go-while/go-pagecatalog/internal/web"
)

var (
	// command-line flags
	configFile  string
	webport     int
	pagesDir    string
	staticDir   string
	uiLocale    string
	webssl      bool
	webcertFile string
	webkeyFile  string
	apacheLog   bool
	debug       bool
	pprofAddr   string
	showVersion bool
)

var appVersion = "-unset-"

const shutdownTimeout = 5 * time.Second

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&configFile, "config", "", "optional config file (.toml, .yaml, .yml or .json)")
	flag.IntVar(&webport, "webport", 0, fmt.Sprintf("Web server port (default: %d)", config.DefaultListenPort))
	flag.StringVar(&pagesDir, "pages", "", fmt.Sprintf("directory scanned for HTML files (default: %s)", config.DefaultPagesDir))
	flag.StringVar(&staticDir, "static", "", fmt.Sprintf("directory served under /static (default: %s)", config.DefaultStaticDir))
	flag.StringVar(&uiLocale, "locale", "", fmt.Sprintf("UI language: ru, en or de (default: %s)", config.DefaultLocale))
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&apacheLog, "apachelog", false, "log requests in Apache combined format")
	flag.BoolVar(&debug, "debug", false, "run gin in debug mode")
	flag.StringVar(&pprofAddr, "pprof", "", "serve pprof on this address, e.g. :51111 (default: off)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(appVersion)
		os.Exit(0)
	}

	mainConfig := config.NewDefaultConfig()
	log.Printf("Starting go-pagecatalog (version: %s)", appVersion)

	if configFile != "" {
		if err := config.LoadFile(configFile, mainConfig); err != nil {
			log.Fatalf("[WEB]: %v", err)
		}
	}
	webConfig := &mainConfig.Web

	// Override config with command-line flags if provided
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	}
	if pagesDir != "" {
		webConfig.PagesDir = pagesDir
	}
	if staticDir != "" {
		webConfig.StaticDir = staticDir
	}
	if uiLocale != "" {
		webConfig.Locale = uiLocale
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
	}
	if apacheLog {
		webConfig.ApacheLog = true
	}
	if debug {
		webConfig.Debug = true
	}

	if err := webConfig.Validate(); err != nil {
		log.Fatalf("[WEB]: %v", err)
	}
	log.Printf("[WEB]: Using WEB configuration: %#v", *webConfig)

	created, err := webConfig.EnsurePagesDir()
	if err != nil {
		log.Fatalf("[WEB]: %v", err)
	}
	if created {
		log.Printf("[WEB]: Created pages directory %q for your HTML files", webConfig.PagesDir)
	}
	if _, err := os.Stat(webConfig.StaticDir); err != nil {
		log.Printf("[WEB]: Static directory %q not available, /static will return 404: %v", webConfig.StaticDir, err)
	}

	if pprofAddr != "" {
		profiler := prof.NewProf()
		go profiler.PprofWeb(pprofAddr)
		log.Printf("[WEB]: pprof listening on %s", pprofAddr)
	}

	server := web.NewServer(webConfig)
	if err := server.Listen(); err != nil {
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Serve(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	color.Green("🚀 Server running at %s", server.URL())
	color.Cyan("📁 Pages directory: %s", webConfig.AbsPagesDir())
	color.Yellow("💡 Drop HTML files into %q and they show up in the catalog", webConfig.PagesDir)

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Web server failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[WEB]: Error during shutdown: %v", err)
	}
	color.Magenta("👋 Server stopped")
} // end main
