// Package config handles configuration for the sales analysis service.
//
// Sources are applied in order: defaults, an optional JSON file (-c or
// -config), environment variables (after loading .env when present) and
// command-line flags. Credentials for the data server and the Gemini API key
// have no defaults and must come from one of those sources.
package config
