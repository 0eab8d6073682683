package journal

import "time"

// RenderRecord is one persisted render.
type RenderRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TraceID        string    `gorm:"size:36;index" json:"trace_id"`
	Source         string    `gorm:"size:64;index" json:"source"`
	Mode           string    `gorm:"size:8" json:"mode"`
	Animated       bool      `json:"animated"`
	Operations     int       `json:"operations"`
	Sections       int       `json:"sections"`
	Completions    int       `json:"completions"`
	Finished       bool      `json:"finished"`
	StartedAt      time.Time `json:"started_at"`
	DurationMicros int64     `json:"duration_micros"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName pins the table name of RenderRecord.
func (RenderRecord) TableName() string {
	return "render_records"
}

// SchemaReport compares the journal table with the RenderRecord model.
type SchemaReport struct {
	Table   string   `json:"table"`
	Exists  bool     `json:"exists"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// Matches reports whether the table has exactly the model columns.
func (r SchemaReport) Matches() bool {
	return r.Exists && len(r.Missing) == 0 && len(r.Extra) == 0
}
