// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - ConfigStore: application configuration
//   - ProfileStore: credential profile persistence
//
// Import rules: can import the domain package only; never an adapter or
// connector package.
package driven
