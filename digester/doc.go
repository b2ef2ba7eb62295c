// Package digester computes SHA256 digests of files and rendered content.
package digester
