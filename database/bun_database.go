package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// BunDB implements Repository using Bun ORM over an in-memory SQLite database.
// The registry lives exactly as long as the process.
type BunDB struct {
	db   *bun.DB
	name string
}

// NewRepository opens the named in-memory registry and migrates it
func NewRepository(name string) (*BunDB, error) {
	if name == "" {
		name = "pdf2jpg"
	}
	connectionString := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	Logger.Info("Initializing in-memory conversion registry with Bun ORM...", "connectionString", connectionString)

	sqlDB, err := sql.Open(sqliteshim.ShimName, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	// A single connection keeps the memory database alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	// Option to turn on verbose logging just returns failures otherwise
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(false)))

	result := &BunDB{db: db, name: name}

	Logger.Info("Running database migrations...")
	if err := result.runMigrations(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	Logger.Info("Conversion registry ready", "name", name)
	return result, nil
}

// Close closes the database connection, dropping the registry
func (b *BunDB) Close() error {
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
	}
	return nil
}

// CreateJob records a new conversion, filling in timestamps and status when unset
func (b *BunDB) CreateJob(job *ConversionJob) error {
	ctx := context.Background()
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = job.CreatedAt
	}
	if job.Status == "" {
		job.Status = JobStatusRunning
	}

	_, err := b.db.NewInsert().
		Model(FromJob(job)).
		Exec(ctx)
	return err
}

// CompleteJob marks a conversion as completed with its page count
func (b *BunDB) CompleteJob(jobID string, pageCount int) error {
	ctx := context.Background()
	now := time.Now().UTC()

	res, err := b.db.NewUpdate().
		Model((*BunConversion)(nil)).
		Set("status = ?", JobStatusCompleted).
		Set("page_count = ?", pageCount).
		Set("updated_at = ?", now).
		Set("completed_at = ?", now).
		Where("id = ?", jobID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireRow(res, jobID)
}

// FailJob marks a conversion as failed with the error that stopped it
func (b *BunDB) FailJob(jobID string, errorMsg string) error {
	ctx := context.Background()
	now := time.Now().UTC()

	res, err := b.db.NewUpdate().
		Model((*BunConversion)(nil)).
		Set("status = ?", JobStatusFailed).
		Set("error = ?", errorMsg).
		Set("updated_at = ?", now).
		Set("completed_at = ?", now).
		Where("id = ?", jobID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireRow(res, jobID)
}

// GetJob retrieves a conversion by ID
func (b *BunDB) GetJob(jobID string) (*ConversionJob, error) {
	ctx := context.Background()
	bunConversion := new(BunConversion)

	err := b.db.NewSelect().
		Model(bunConversion).
		Where("id = ?", jobID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return bunConversion.ToJob(), nil
}

// GetRecentJobs retrieves the most recent conversions with pagination
func (b *BunDB) GetRecentJobs(limit, offset int) ([]ConversionJob, error) {
	ctx := context.Background()
	var bunConversions []BunConversion

	err := b.db.NewSelect().
		Model(&bunConversions).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]ConversionJob, 0, len(bunConversions))
	for i := range bunConversions {
		jobs = append(jobs, *bunConversions[i].ToJob())
	}
	return jobs, nil
}

// DeleteOldJobs forgets finished conversions older than the specified duration.
// Only registry rows are removed, the files on disk are left alone.
func (b *BunDB) DeleteOldJobs(olderThan time.Duration) (int, error) {
	ctx := context.Background()
	cutoffTime := time.Now().UTC().Add(-olderThan)

	result, err := b.db.NewDelete().
		Model((*BunConversion)(nil)).
		Where("status IN (?)", bun.In([]string{string(JobStatusCompleted), string(JobStatusFailed)})).
		Where("completed_at < ?", cutoffTime).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	count, err := result.RowsAffected()
	return int(count), err
}

func requireRow(res sql.Result, jobID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return nil
}
