// Package config provides centralized configuration management for bizdash.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. The YAML configuration file
//  3. Default values (lowest priority)
//
// All environment variables follow the pattern BIZDASH_* for namespacing:
//
//	BIZDASH_SERVER_PORT=8080
//	BIZDASH_SERVER_DATASET=contracts
//	BIZDASH_LOGGING_LEVEL=debug
//	BIZDASH_PATHS_SOURCE_DIR=/srv/planilhas
//	BIZDASH_CONFIG_FILE=/etc/bizdash/config.yaml
//
// Source workbooks and column layouts can only be set in the file:
//
//	sources:
//	  - kind: invoices
//	    path: 43487379000119 NFS-E EMITIDAS.xls
//	    company: A.M Segurança do Trabalho
//	layouts:
//	  invoices:
//	    first_data_row: 20
//
// Layout overrides are merged over the built-in layouts of package
// extraction, column by column.
//
// # Path Management
//
// Paths resolves every directory against the base directory and names the
// well-known snapshot files:
//
//	paths, err := config.GetPaths(cfg.Paths)
//	file, err := paths.SnapshotFile("contracts")
package config
