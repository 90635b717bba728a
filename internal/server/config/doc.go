// Package config handles configuration for the sales data server.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment variables, after loading a .env file if present (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// The signing secret has no default. (*Config).Validate rejects a
// configuration without one, so a server never starts with a key that is
// baked into the binary.
package config
