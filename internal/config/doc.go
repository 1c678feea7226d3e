// Package config loads casetree's YAML configuration, merging the file on
// top of built-in defaults. Every tunable has a working default, so a
// missing config file is never an error.
package config
