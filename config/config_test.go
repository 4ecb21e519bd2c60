package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "API_KEY", "UPLOAD_DIR", "OUTPUT_DIR", "RENDERER", "RENDER_DPI", "FETCH_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load(testLogger())

	if cfg.ListenAddrPort != "8000" {
		t.Errorf("Expected port 8000, got %s", cfg.ListenAddrPort)
	}
	if cfg.RenderDPI != 200 {
		t.Errorf("Expected 200 DPI, got %d", cfg.RenderDPI)
	}
	if cfg.Renderer != RendererPDFium {
		t.Errorf("Expected renderer %s, got %s", RendererPDFium, cfg.Renderer)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("Expected fetch timeout 10s, got %s", cfg.FetchTimeout)
	}
	if !filepath.IsAbs(cfg.UploadDir) || filepath.Base(cfg.UploadDir) != "uploads" {
		t.Errorf("Expected absolute uploads dir, got %s", cfg.UploadDir)
	}
	if !filepath.IsAbs(cfg.OutputDir) || filepath.Base(cfg.OutputDir) != "output_images" {
		t.Errorf("Expected absolute output_images dir, got %s", cfg.OutputDir)
	}
	if cfg.APIKey != "" {
		t.Errorf("Expected no API key by default, got %q", cfg.APIKey)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("API_KEY", "secret")
	t.Setenv("RENDERER", "FITZ")
	t.Setenv("RENDER_DPI", "150")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")
	t.Setenv("OUTPUT_DIR", filepath.Join(dir, "out"))
	t.Setenv("JOB_HISTORY_HOURS", "2")

	cfg := Load(testLogger())

	if cfg.APIKey != "secret" {
		t.Errorf("Expected API key from environment, got %q", cfg.APIKey)
	}
	if cfg.Renderer != RendererFitz {
		t.Errorf("Expected renderer to be lower-cased to %s, got %s", RendererFitz, cfg.Renderer)
	}
	if cfg.RenderDPI != 150 {
		t.Errorf("Expected 150 DPI, got %d", cfg.RenderDPI)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("Expected fetch timeout 3s, got %s", cfg.FetchTimeout)
	}
	if cfg.OutputDir != filepath.Join(dir, "out") {
		t.Errorf("Expected output dir %s, got %s", filepath.Join(dir, "out"), cfg.OutputDir)
	}
	if cfg.JobHistory != 2*time.Hour {
		t.Errorf("Expected job history 2h, got %s", cfg.JobHistory)
	}
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("RENDER_DPI", "lots")
	if got := getEnvInt("RENDER_DPI", 200); got != 200 {
		t.Errorf("Expected fallback 200, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	valid := ServerConfig{
		APIKey:        "secret",
		Renderer:      RendererPDFium,
		RenderDPI:     200,
		JPEGQuality:   95,
		RenderWorkers: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}

	t.Run("Missing API key", func(t *testing.T) {
		cfg := valid
		cfg.APIKey = ""
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "API_KEY") {
			t.Errorf("Expected API_KEY error, got: %v", err)
		}
	})

	t.Run("Unknown renderer", func(t *testing.T) {
		cfg := valid
		cfg.Renderer = "ghostscript"
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "ghostscript") {
			t.Errorf("Expected renderer error, got: %v", err)
		}
	})

	t.Run("Several problems reported together", func(t *testing.T) {
		cfg := valid
		cfg.RenderDPI = 0
		cfg.JPEGQuality = 101
		err := cfg.Validate()
		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if !strings.Contains(err.Error(), "RENDER_DPI") || !strings.Contains(err.Error(), "JPEG_QUALITY") {
			t.Errorf("Expected both DPI and quality errors, got: %v", err)
		}
	})
}
