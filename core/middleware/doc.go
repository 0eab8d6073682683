// Package middleware groups the Fiber middleware mounted in front of the sectionkit
// features.
//
// # Components
//
//   - rayid: tags every request with an X-Ray-ID (taken from the request when present,
//     otherwise a fresh uuid) and stores it under the "ray_id" local, which
//     logger.WithRayID reads.
//   - auth: requires the configured X-API-Key on every route except the skipped
//     prefixes (the swagger UI). An empty key disables the check.
//
// cmd/start.go mounts rayid first, then request logging, then the swagger route and
// finally auth, so rejected requests are still logged with their ray id.
package middleware
