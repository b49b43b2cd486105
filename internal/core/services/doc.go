// Package services contains the core application services that sit
// between the driving adapters (CLI, MCP) and the driven ports
// (config, profile storage).
package services
