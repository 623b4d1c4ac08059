// Package services implements the business logic between the HTTP handlers
// and the snapshot.
//
// ExtractionService runs the offline pipeline: it reads every configured
// workbook, assembles one collection per schema and writes the JSON
// snapshot. DashboardService answers dashboard queries: it applies the
// session's filter state to a snapshot dataset and hands the result to the
// analytics package. HealthService reports liveness for the API.
//
// Services take their collaborators through their constructors and log
// through an injected *slog.Logger tagged with their component name.
package services
