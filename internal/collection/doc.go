// Package collection identifies which on-disk collection variant an archive
// carries and decodes it into a raw database image.
//
// Exports ship the collection database under one of three entry names.
// Newer exports often include a legacy stub alongside the real data, so
// detection follows a fixed priority: collection.anki21b (zstd), then
// collection.anki21 (zstd), then collection.anki2 (raw SQLite). Picking the
// wrong one would hand compressed bytes to the database engine or vice
// versa.
package collection
