// Package config loads, normalizes, and validates attnview configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the ATTNVIEW_DATA_ROOT and ATTNVIEW_BIND environment
// overrides. Commands obtain every setting through Load so downstream code
// receives absolute paths and canonical log settings.
package config
