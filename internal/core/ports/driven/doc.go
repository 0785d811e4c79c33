// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SearchEngine: Executes a query against the web search API
//   - Fetcher: Downloads the content behind a result link
//   - FileStore: Persists accepted downloads
//   - ProgressReporter: Displays batch download progress
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
