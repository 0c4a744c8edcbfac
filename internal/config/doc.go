// Package config centralizes application configuration: logging options and
// the input/processed/output directory layout. Values load from environment
// variables with the SMM prefix, then from an optional config.yaml next to
// the executable, with env taking precedence. All relative paths resolve
// against the executable directory, never the working directory.
package config
