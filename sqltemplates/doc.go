// Package sqltemplates embeds the SQL templates of the station information
// Snowpipe deployment together with manifest.yaml, which fixes their output
// names and render order, the configuration keys that must be present, and
// the files a cleanup must leave alone.
package sqltemplates
