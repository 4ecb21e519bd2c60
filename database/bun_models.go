package database

import (
	"time"

	"github.com/uptrace/bun"
)

// BunConversion represents the conversions table for Bun ORM
type BunConversion struct {
	bun.BaseModel `bun:"table:conversions,alias:cv"`

	ID          string     `bun:"id,pk"` // UUID as string
	Source      string     `bun:"source,notnull"`
	Origin      string     `bun:"origin,notnull,default:''"`
	Status      string     `bun:"status,notnull,default:'running'"`
	PageCount   int        `bun:"page_count,notnull,default:0"`
	Error       string     `bun:"error,nullzero"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
	CompletedAt *time.Time `bun:"completed_at,nullzero"`
}

// ToJob converts BunConversion to ConversionJob
func (bc *BunConversion) ToJob() *ConversionJob {
	return &ConversionJob{
		ID:          bc.ID,
		Source:      JobSource(bc.Source),
		Origin:      bc.Origin,
		Status:      JobStatus(bc.Status),
		PageCount:   bc.PageCount,
		Error:       bc.Error,
		CreatedAt:   bc.CreatedAt,
		UpdatedAt:   bc.UpdatedAt,
		CompletedAt: bc.CompletedAt,
	}
}

// FromJob converts ConversionJob to BunConversion
func FromJob(job *ConversionJob) *BunConversion {
	return &BunConversion{
		ID:          job.ID,
		Source:      string(job.Source),
		Origin:      job.Origin,
		Status:      string(job.Status),
		PageCount:   job.PageCount,
		Error:       job.Error,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
		CompletedAt: job.CompletedAt,
	}
}
