package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/drummonds/pdf2jpg/database"
)

// Source produces the bytes of a PDF at a staging path
type Source interface {
	Stage(ctx context.Context, stagingPath string) error
	// Describe names the kind of source and where the PDF came from
	Describe() (database.JobSource, string)
}

// StagingArea is the directory source PDFs are written to before rendering
type StagingArea struct {
	Dir string
}

// NewStagingArea makes sure the staging directory exists
func NewStagingArea(dir string) (*StagingArea, error) {
	if err := ensureDirectory("staging", dir); err != nil {
		return nil, &StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	return &StagingArea{Dir: dir}, nil
}

// Path is the staging location of a job's PDF
func (s *StagingArea) Path(jobID string) string {
	return filepath.Join(s.Dir, jobID+".pdf")
}

// writeStagingFile copies r to path, removing the partial file on failure
func writeStagingFile(path string, r io.Reader) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, &StorageError{Op: "create", Path: path, Err: err}
	}
	written, copyErr := io.Copy(out, r)
	closeErr := out.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(path)
		return written, copyErr
	}
	return written, nil
}

// UploadSource stages a PDF sent as a multipart file part
type UploadSource struct {
	File *multipart.FileHeader
}

// Stage writes the uploaded file verbatim to the staging path
func (u *UploadSource) Stage(_ context.Context, stagingPath string) error {
	if u.File == nil {
		return ErrMissingFile
	}
	src, err := u.File.Open()
	if err != nil {
		return &StorageError{Op: "read upload", Path: u.File.Filename, Err: err}
	}
	defer src.Close()

	written, err := writeStagingFile(stagingPath, src)
	if err != nil {
		var storageErr *StorageError
		if errors.As(err, &storageErr) {
			return err
		}
		return &StorageError{Op: "write", Path: stagingPath, Err: err}
	}
	Logger.Debug("Staged uploaded PDF", "file", u.File.Filename, "path", stagingPath, "bytes", written)
	return nil
}

// Describe reports the uploaded filename
func (u *UploadSource) Describe() (database.JobSource, string) {
	if u.File == nil {
		return database.JobSourceUpload, ""
	}
	return database.JobSourceUpload, u.File.Filename
}

// Fetcher downloads remote PDFs
type Fetcher struct {
	HTTPClient *http.Client
	UserAgent  string
}

// NewFetcher creates a fetcher whose requests give up after timeout
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: userAgent,
	}
}

// Fetch GETs rawURL and writes the body to stagingPath. Any failure is a
// *FetchError, except local write failures which are a *StorageError.
// Nothing is left at stagingPath when Fetch fails.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, stagingPath string) error {
	if rawURL == "" {
		return &FetchError{URL: rawURL, Err: errors.New("url is required")}
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("remote server returned %s", resp.Status)}
	}

	written, err := writeStagingFile(stagingPath, resp.Body)
	if err != nil {
		var storageErr *StorageError
		if errors.As(err, &storageErr) {
			return err
		}
		// Reading the body failed, typically the timeout expiring mid-transfer
		return &FetchError{URL: rawURL, Err: err}
	}
	Logger.Debug("Staged fetched PDF", "url", rawURL, "path", stagingPath, "bytes", written)
	return nil
}

// URLSource stages a PDF fetched from a caller supplied URL
type URLSource struct {
	URL     string
	Fetcher *Fetcher
}

// Stage fetches the URL into the staging path
func (u *URLSource) Stage(ctx context.Context, stagingPath string) error {
	return u.Fetcher.Fetch(ctx, u.URL, stagingPath)
}

// Describe reports the fetched URL
func (u *URLSource) Describe() (database.JobSource, string) {
	return database.JobSourceURL, u.URL
}
