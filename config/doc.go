// Package config reads flat KEY=VALUE configuration files into a Mapping.
// Blank lines and lines starting with "#" are ignored, the first "=" splits
// key from value, and lines without "=" are skipped. A missing file yields
// an empty Mapping rather than an error.
package config
