// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pipeline is: BuildRequest -> SearchEngine.Execute -> MapResults,
// followed optionally by BatchDownloader.DownloadAll.
package services
