package journal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sectionkit/core/database"
)

// ErrNoDatabase is returned when the journal runs without a database.
var ErrNoDatabase = errors.New("journal database not configured")

const (
	// DefaultLimit is the number of records returned when no limit is given.
	DefaultLimit = 50
	// MaxLimit caps the number of records returned at once.
	MaxLimit = 500
)

// Service reads and writes the render journal.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new journal service. db may be nil.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Enabled reports whether a database is configured.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Migrate creates or updates the render_records table.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	if err := s.db.AutoMigrate(&RenderRecord{}); err != nil {
		return fmt.Errorf("failed to migrate render journal: %w", err)
	}
	return nil
}

// Recorder returns an adapter observer writing to the journal. source tags the
// records, so that several adapters can share one table.
func (s *Service) Recorder(source string) *Recorder {
	return &Recorder{db: s.db, logger: s.logger, source: source}
}

// Recent returns up to limit records, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]RenderRecord, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	var records []RenderRecord
	if err := s.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read render journal: %w", err)
	}
	return records, nil
}

// CheckSchema compares the columns of the journal table with the RenderRecord model.
func (s *Service) CheckSchema() (*SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(&RenderRecord{}); err != nil {
		return nil, fmt.Errorf("failed to parse render record model: %w", err)
	}
	report := &SchemaReport{Table: stmt.Schema.Table}

	columns, err := database.GetTableColumns(s.db, report.Table)
	if err != nil {
		return nil, err
	}
	report.Exists = len(columns) > 0

	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c.Field] = true
	}
	expected := make(map[string]bool, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		expected[name] = true
		if report.Exists && !present[name] {
			report.Missing = append(report.Missing, name)
		}
	}
	for _, c := range columns {
		if !expected[c.Field] {
			report.Extra = append(report.Extra, c.Field)
		}
	}
	slices.Sort(report.Extra)
	return report, nil
}
