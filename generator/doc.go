// Package generator renders the Snowpipe deployment SQL files. Generate loads
// the KEY=VALUE configuration, refuses to write anything when the file is
// missing or a required key is absent, then renders the per-purpose templates
// in manifest order followed by the aggregate deployment script.
//
// Writes are not transactional: an I/O error stops the run and files written
// earlier in the same run are left in place.
package generator
