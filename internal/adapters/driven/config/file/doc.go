// Package file provides file-based configuration for gsearch.
//
//   - ConfigStore: TOML configuration stored at ~/.gsearch/config.toml
//   - LoadConfig: assembles domain.Config from the store and the environment,
//     including variables from a .env file
package file
