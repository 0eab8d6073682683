package journal

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sectionkit/core/adapter"
)

var _ adapter.Observer = (*Recorder)(nil)

// Recorder writes a RenderRecord for every finished render. Write failures are logged
// and never reach the adapter.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
	source string
}

func (r *Recorder) RenderStarted(adapter.Transaction) {}

func (r *Recorder) RenderFinished(tx adapter.Transaction, finished bool) {
	record := RenderRecord{
		TraceID:        tx.TraceID.String(),
		Source:         r.source,
		Mode:           tx.Mode,
		Animated:       tx.Animated,
		Operations:     tx.Operations(),
		Sections:       tx.Sections,
		Completions:    tx.Completions,
		Finished:       finished,
		StartedAt:      tx.StartedAt,
		DurationMicros: tx.Duration().Microseconds(),
	}
	if err := r.db.Create(&record).Error; err != nil {
		r.logger.Warn("failed to record render", zap.String("trace_id", record.TraceID), zap.Error(err))
	}
}
