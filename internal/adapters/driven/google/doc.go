// Package google provides the search engine adapter for the Google
// Custom Search JSON API.
//
// It contains:
//   - Engine, an implementation of driven.SearchEngine on top of the
//     official customsearch/v1 client
//   - Error classification for common Google API errors (401, 403, 429)
//
// # Usage
//
//	engine, err := google.NewEngine(ctx, cfg)
//	items, err := engine.Execute(ctx, req)
//
// The API key travels as the "key" query parameter of each call, so the
// underlying client is created without Google credentials.
package google
