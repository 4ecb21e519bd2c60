package database

import (
	"fmt"
	"time"
)

// JobStatus represents the status of a conversion
type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobSource says where the PDF of a conversion came from
type JobSource string

const (
	JobSourceUpload JobSource = "upload"
	JobSourceURL    JobSource = "url"
)

// ConversionJob is the registry entry for one conversion request
type ConversionJob struct {
	ID          string     `json:"file_id"`
	Source      JobSource  `json:"source"`
	Origin      string     `json:"origin"` // uploaded filename or fetched URL
	Status      JobStatus  `json:"status"`
	PageCount   int        `json:"page_count"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PageFilename is the artifact name of page n (1-indexed) of a job
func PageFilename(jobID string, page int) string {
	return fmt.Sprintf("%s_page_%d.jpg", jobID, page)
}

// DownloadLink is the relative URL an artifact is served from
func DownloadLink(filename string) string {
	return "/download/" + filename
}

// DownloadLinks lists the links of a completed job in page order
func (j *ConversionJob) DownloadLinks() []string {
	if j.Status != JobStatusCompleted {
		return []string{}
	}
	links := make([]string, 0, j.PageCount)
	for page := 1; page <= j.PageCount; page++ {
		links = append(links, DownloadLink(PageFilename(j.ID, page)))
	}
	return links
}
