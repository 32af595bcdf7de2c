// Package history records subtitle processing runs in a SQLite database so
// repeated passes over the same file can be audited and pruned.
package history
