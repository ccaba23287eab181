// Package config holds runtime configuration for transitcat.
//
// Values are resolved in three layers, later layers winning:
//
//  1. Default()
//  2. an optional YAML file (gopkg.in/yaml.v3)
//  3. TRANSITCAT_* environment variables, optionally seeded from a .env file
//
// The result is validated with struct tags (go-playground/validator).
package config
