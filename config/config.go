package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// Supported renderer backends
const (
	RendererPDFium = "pdfium"
	RendererFitz   = "fitz"
)

// DefaultUserAgent is sent with outbound PDF fetches, some hosts refuse clients
// that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// ServerConfig contains all of the server settings
type ServerConfig struct {
	ListenAddrIP     string
	ListenAddrPort   string
	APIKey           string `json:"-"`
	UploadDir        string // absolute path, staged source PDFs
	OutputDir        string // absolute path, rendered page images
	Renderer         string
	RenderDPI        int
	JPEGQuality      int
	RenderWorkers    int
	FetchTimeout     time.Duration
	FetchUserAgent   string
	UploadLimit      string // echo body limit syntax, e.g. "20M"; empty disables the limit
	JobRegistryName  string
	JobHistory       time.Duration
	JobPruneInterval int // minutes
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// absDir resolves a configured directory relative to the working directory
func absDir(logger *slog.Logger, key, defaultValue string) string {
	dir := filepath.ToSlash(getEnv(key, defaultValue))
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger.Error("Failed creating absolute path", "key", key, "path", dir, "error", err)
		return dir
	}
	return abs
}

// SetupServer loads configuration and returns ServerConfig and Logger
func SetupServer() (ServerConfig, *slog.Logger) {
	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	serverConfig := Load(logger)

	fmt.Println("\n========================================")
	fmt.Println("   pdf2jpg - PDF to JPEG conversion API")
	fmt.Println("========================================")
	fmt.Printf("Server will start on: %s:%s\n", serverConfig.ListenAddrIP, serverConfig.ListenAddrPort)
	if serverConfig.ListenAddrIP == "" {
		fmt.Println("(Listening on all network interfaces)")
	}
	fmt.Printf("Renderer: %s at %d DPI\n", serverConfig.Renderer, serverConfig.RenderDPI)

	return serverConfig, logger
}

// Load reads the server configuration from the environment without touching .env files
func Load(logger *slog.Logger) ServerConfig {
	serverConfig := ServerConfig{}

	serverConfig.ListenAddrPort = getEnv("SERVER_PORT", "8000")
	serverConfig.ListenAddrIP = getEnv("SERVER_ADDR", "")

	serverConfig.APIKey = os.Getenv("API_KEY")
	if serverConfig.APIKey == "" {
		logger.Warn("API_KEY is not set, every conversion request will be rejected")
	}

	serverConfig.UploadDir = absDir(logger, "UPLOAD_DIR", "uploads")
	serverConfig.OutputDir = absDir(logger, "OUTPUT_DIR", "output_images")

	// Rendering
	serverConfig.Renderer = strings.ToLower(getEnv("RENDERER", RendererPDFium))
	serverConfig.RenderDPI = getEnvInt("RENDER_DPI", 200)
	serverConfig.JPEGQuality = getEnvInt("JPEG_QUALITY", 95)
	serverConfig.RenderWorkers = getEnvInt("RENDER_WORKERS", 2)
	logger.Info("Renderer configuration loaded", "renderer", serverConfig.Renderer, "dpi", serverConfig.RenderDPI, "workers", serverConfig.RenderWorkers)

	// Remote fetch
	serverConfig.FetchTimeout = time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second
	serverConfig.FetchUserAgent = getEnv("FETCH_USER_AGENT", DefaultUserAgent)
	serverConfig.UploadLimit = getEnv("UPLOAD_LIMIT", "")

	// Conversion registry
	serverConfig.JobRegistryName = getEnv("JOB_REGISTRY_NAME", "pdf2jpg")
	serverConfig.JobHistory = time.Duration(getEnvInt("JOB_HISTORY_HOURS", 24)) * time.Hour
	serverConfig.JobPruneInterval = getEnvInt("JOB_PRUNE_INTERVAL", 60)

	return serverConfig
}

// Validate reports settings the server cannot start with
func (c ServerConfig) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY must be set"))
	}
	switch c.Renderer {
	case RendererPDFium, RendererFitz:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q (supported: %s, %s)", c.Renderer, RendererPDFium, RendererFitz))
	}
	if c.RenderDPI <= 0 {
		errs = append(errs, fmt.Errorf("RENDER_DPI must be positive, got %d", c.RenderDPI))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("JPEG_QUALITY must be between 1 and 100, got %d", c.JPEGQuality))
	}
	if c.RenderWorkers <= 0 {
		errs = append(errs, fmt.Errorf("RENDER_WORKERS must be positive, got %d", c.RenderWorkers))
	}
	return errors.Join(errs...)
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	logLevel := getEnv("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	logOutput := getEnv("LOG_OUTPUT", "stdout")
	var logWriter io.Writer = os.Stdout

	if logOutput == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "pdf2jpg.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	}

	if getEnvBool("LOG_JSON", false) {
		return slog.New(slog.NewJSONHandler(logWriter, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(logWriter, handlerOptions))
}
