// Package archive stores snapshots of the section layout in object storage.
//
// A Manifest describes a snapshot without its behaviour: the groups in display order,
// and for every section its identity, item count, cell type and whether it has a
// header or footer. Manifests are stored as JSON under snapshots/<name>.json in the
// configured bucket and can be rebuilt into static sections, which lets the simulator
// and the playground replay an archived layout.
//
// # Endpoints
//
//   - GET /archive: list archived snapshots
//   - GET /archive/:name: read one manifest
//   - POST /archive/:name: archive the live playground snapshot
//   - DELETE /archive/:name: remove one snapshot
//   - DELETE /archive: remove every snapshot
//
// Concurrent reads of the same manifest share one storage request.
package archive
