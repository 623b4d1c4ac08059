// Package app wires the dashboard process together.
//
// # Initialization Flow
//
//  1. Load configuration from environment and config.yaml
//  2. Initialize logging
//  3. Load the snapshot written by the extraction command
//  4. Create the filter store and the dashboard services
//  5. Set up middleware and HTTP routes
//  6. Configure the HTTP server
//
// The snapshot is loaded once at startup; rerun the extraction command and
// restart the server to pick up new data.
//
// # Graceful Shutdown
//
// SIGINT and SIGTERM stop accepting connections and let active requests
// finish within the configured shutdown timeout.
//
// Initialization errors are returned to the caller. The package never calls
// os.Exit.
package app
