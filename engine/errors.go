package engine

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/drummonds/pdf2jpg/database"
	"github.com/labstack/echo/v4"
)

var (
	// ErrUnauthorized is returned when the supplied API key does not match
	ErrUnauthorized = errors.New("Invalid API Key")
	// ErrNotFound is returned for artifacts that were never produced
	ErrNotFound = errors.New("Image not found.")
	// ErrMissingFile is returned when an upload request has no file part
	ErrMissingFile = errors.New("file is required")
)

// FetchError is an input acquisition failure in URL mode. It is the caller's
// problem (bad URL, unreachable or failing host), not the server's.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch PDF from URL: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StorageError is a local filesystem failure while staging or storing files
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Storage error (%s %s): %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ConversionError is any renderer failure, malformed PDF input included
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// httpError maps an error to the HTTP status it is reported with
func httpError(err error) *echo.HTTPError {
	var (
		he         *echo.HTTPError
		fetchErr   *FetchError
		storageErr *StorageError
		convErr    *ConversionError
	)
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, database.ErrJobNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMissingFile), errors.As(err, &fetchErr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &storageErr), errors.As(err, &convErr):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// errorDetail is the body of every error response
type errorDetail struct {
	Detail string `json:"detail"`
}

// ErrorHandler renders every error as {"detail": "..."}
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he := httpError(err)
	detail := fmt.Sprint(he.Message)
	if he.Message == nil {
		detail = http.StatusText(he.Code)
	}
	if he.Code >= http.StatusInternalServerError && Logger != nil {
		Logger.Error("Request failed", "path", c.Request().URL.Path, "status", he.Code, "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, errorDetail{Detail: detail})
	}
	if err != nil && Logger != nil {
		Logger.Error("Failed to write error response", "error", err)
	}
}
