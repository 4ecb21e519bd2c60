package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/swaggo/swag"

	config "github.com/drummonds/pdf2jpg/config"
	database "github.com/drummonds/pdf2jpg/database"
	_ "github.com/drummonds/pdf2jpg/docs"
	engine "github.com/drummonds/pdf2jpg/engine"
	"github.com/drummonds/pdf2jpg/engine/pdfrenderer"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	database.Logger = Logger
	config.Logger = Logger
	engine.Logger = Logger
}

// @title pdf2jpg API
// @version 1.0
// @description Converts PDF documents, uploaded or fetched from a URL, into one JPEG per page.

// @contact.name API Support
// @contact.url https://github.com/drummonds/pdf2jpg

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

// @tag.name Convert
// @tag.description PDF to JPEG conversion

// @tag.name Download
// @tag.description Generated page images

// @tag.name Jobs
// @tag.description Conversion registry

// @tag.name Admin
// @tag.description Service health check

func main() {
	serverConfig, logger := config.SetupServer()
	injectGlobals(logger) //inject the logger into all of the packages

	if err := serverConfig.Validate(); err != nil {
		Logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	Logger.Info("Setting up conversion registry", "name", serverConfig.JobRegistryName)
	db, err := database.NewRepository(serverConfig.JobRegistryName)
	if err != nil {
		Logger.Error("Unable to open conversion registry", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	renderer, err := pdfrenderer.NewRenderer(serverConfig.Renderer, pdfrenderer.Options{Workers: serverConfig.RenderWorkers})
	if err != nil {
		Logger.Error("Unable to start renderer", "renderer", serverConfig.Renderer, "error", err)
		os.Exit(1)
	}
	defer renderer.Close()
	Logger.Info("Renderer ready", "renderer", serverConfig.Renderer, "workers", serverConfig.RenderWorkers)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = engine.ErrorHandler

	serverHandler, err := engine.NewServerHandler(serverConfig, db, e, renderer) //injecting the database into the handler for routes
	if err != nil {
		Logger.Error("Startup checks failed", "error", err)
		os.Exit(1)
	}
	scheduler, err := serverHandler.InitializeSchedules() //initialize all the cron jobs
	if err != nil {
		Logger.Error("Unable to start schedules", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	useMiddleware(e, serverConfig)
	registerRoutes(e, serverHandler)

	if serverConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%s", serverConfig.ListenAddrIP, serverConfig.ListenAddrPort)
	go func() {
		Logger.Info("Starting HTTP server", "address", addr)
		fmt.Printf("\n✅  pdf2jpg running on %s\n", addr)
		fmt.Printf("🏥  Health check: http://%s/api/health\n\n", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if isAddressInUse(err) {
				Logger.Error("Port already in use", "port", serverConfig.ListenAddrPort)
			}
			Logger.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	Logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		Logger.Error("Graceful shutdown failed", "error", err)
	}
}

// useMiddleware installs recovery, request ids, logging, CORS and the optional upload limit
func useMiddleware(e *echo.Echo, serverConfig config.ServerConfig) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))

	// Request logging
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "id=${id}, method=${method}, uri=${uri}, status=${status}, latency=${latency_human}\n",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	if serverConfig.UploadLimit != "" {
		Logger.Info("Limiting request bodies", "limit", serverConfig.UploadLimit)
		e.Use(middleware.BodyLimit(serverConfig.UploadLimit))
	}
}

// registerRoutes wires every endpoint to its handler
func registerRoutes(e *echo.Echo, serverHandler *engine.ServerHandler) {
	// Conversion routes, /convert/file is an alias of /convert
	e.POST("/convert", serverHandler.ConvertFile)
	e.POST("/convert/file", serverHandler.ConvertFile)
	e.POST("/convert/url", serverHandler.ConvertURL)

	// Generated images (served as files, so not under /api/*)
	e.GET("/download/:filename", serverHandler.Download)

	// Job tracking API routes
	e.GET("/api/jobs", serverHandler.GetRecentJobs)
	e.GET("/api/jobs/:id", serverHandler.GetJob)

	e.GET("/api/health", serverHandler.GetHealth)
	e.GET("/api/swagger.json", func(c echo.Context) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
	})
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}
