// Package config provides configuration structures and utilities for pagescan.
// It defines the main configuration options for document analysis, parsing
// behavior, and report generation preferences.
package config
