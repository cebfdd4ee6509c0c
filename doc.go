// Package pathedit reads, writes and deletes values inside nested map[string]interface{}
// structures using delimited paths such as "a/b/c". Writes and deletes never touch the
// input; they return a deep copy with the change applied.
//
// The package also carries a few string helpers (placeholder substitution, list and
// count formatting) and codecs for YAML and JSON Patch documents.
package pathedit
