// Package config manages user-level settings stored at ~/.hossam/config.yaml.
// Values resolve with the precedence flag > HOSSAM_* environment variable >
// config file > built-in default, and select which executables and template
// set the scaffolding pipeline uses.
package config
