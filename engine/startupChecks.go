package engine

import (
	"fmt"
	"os"
)

// StartupChecks performs all the checks to make sure everything works
func (serverHandler *ServerHandler) StartupChecks() error {
	if err := serverHandler.ServerConfig.Validate(); err != nil {
		Logger.Error("Invalid configuration", "error", err)
		return err
	}
	if err := ensureDirectory("upload", serverHandler.ServerConfig.UploadDir); err != nil {
		return err
	}
	if err := ensureDirectory("output", serverHandler.ServerConfig.OutputDir); err != nil {
		return err
	}
	return nil
}

// ensureDirectory makes sure a configured directory exists and is a directory
func ensureDirectory(name, path string) error {
	if path == "" {
		Logger.Error("Directory not configured", "name", name)
		return fmt.Errorf("%s directory not configured", name)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			Logger.Info("Creating directory", "name", name, "path", path)
			if err := os.MkdirAll(path, 0755); err != nil {
				Logger.Error("Failed to create directory", "name", name, "path", path, "error", err)
				return err
			}
			return nil
		}
		Logger.Error("Error checking directory", "name", name, "path", path, "error", err)
		return err
	}

	if !info.IsDir() {
		Logger.Error("Path exists but is not a directory", "name", name, "path", path)
		return fmt.Errorf("%s path is not a directory: %s", name, path)
	}

	Logger.Debug("Directory exists", "name", name, "path", path)
	return nil
}
