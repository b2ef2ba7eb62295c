// Package sweeper removes previously generated SQL files from a directory.
// Only the names it is given are considered; absent files are skipped.
package sweeper
