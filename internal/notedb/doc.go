// Package notedb opens decoded collection images as in-memory SQLite
// databases and extracts raw card rows.
//
// The Engine is created once per batch; each archive then gets its own
// scoped database handle. Images are loaded with SQLite's deserialize API,
// so nothing touches disk. Extraction runs one fixed join of cards to notes
// with a hard row cap and maps every row into a Row immediately; untyped
// database rows never leave this package.
package notedb
