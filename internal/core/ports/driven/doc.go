// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//   - SourceRegistrar: Installs the commands of a data-source module
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Invocation history. Without it, nothing is recorded.
//
// # Import Rules
//
//   - Can Import: domain and command packages only
//   - Cannot Import: Any adapter or data-source package
package driven
