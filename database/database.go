package database

import (
	"errors"
	"log/slog"
	"time"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ErrJobNotFound is returned when no conversion has the requested id
var ErrJobNotFound = errors.New("conversion not found")

// Repository keeps track of the conversions handled by this process
type Repository interface {
	Close() error
	CreateJob(job *ConversionJob) error
	CompleteJob(jobID string, pageCount int) error
	FailJob(jobID string, errorMsg string) error
	GetJob(jobID string) (*ConversionJob, error)
	GetRecentJobs(limit, offset int) ([]ConversionJob, error)
	DeleteOldJobs(olderThan time.Duration) (int, error)
}
