// Package http implements the JSON API of the dashboard.
//
// Handlers are thin: they parse the request, call the dashboard service and
// render the result. Successful responses share one envelope:
//
//	{"status": "success", "data": ..., "count": n}
//
// where count is only present on collections. Failures are rendered as RFC
// 7807 problem details by the errors package.
//
// Routes:
//
//	GET  /api/health
//	GET  /api/version
//	POST /api/logs
//	GET  /api/filter
//	POST /api/filter/actions
//	POST /api/filter/reset
//	GET  /api/facets
//	GET  /api/clients
//	GET  /api/{dataset}/records|stats|ranking|ranking.csv|trend
//	GET  /api/{dataset}/rollups/{dimension}
//	GET  /api/{dataset}/cohorts|lifecycle|evolution|highlights|direct
package http
