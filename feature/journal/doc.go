// Package journal persists the renders driven by the section adapter.
//
// A Recorder is registered as an adapter.Observer. Every finished render becomes a
// RenderRecord row in the render_records table, carrying the trace id, the mode (batch
// or full), the number of structural operations and of fired completions, and the
// duration. The journal is optional: without a database the feature is disabled.
//
// # Endpoints
//
//   - GET /journal?limit=N: most recent renders first
//   - GET /journal/schema: compares the render_records columns with the model
//
// # Usage
//
//	svc := journal.NewService(db, log)
//	_ = svc.Migrate()
//	a.AddObserver(svc.Recorder("playground"))
package journal
