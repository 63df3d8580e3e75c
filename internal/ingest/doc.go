// Package ingest drives the archive-to-cards pipeline for one submission
// of uploaded packages.
//
// A Session moves idle -> loading -> ready|error. Archives are processed
// strictly in submission order; a bad archive is logged and skipped, never
// fatal for the batch. Only a failure outside any single archive's handling
// (the SQLite engine refusing to initialize) surfaces as the error state.
// Accumulated cards and the entry-name manifest become visible to readers
// only at the terminal transition.
package ingest
