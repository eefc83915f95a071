// Package internal documents the Gatherly server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, error rendering, and routing
// - domain: business logic and domain models (events, users)
// - storage: database access and repositories (pgx + Postgres)
// - config, metrics, telemetry: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
