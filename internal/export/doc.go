// Package export renders normalized cards as delimited text for external
// study tools.
//
// Output is a two-column CSV (Term, Definition). Card fields are parsed as
// markup first: <br> variants become newlines, every other tag is dropped,
// and entities are decoded. Fields containing a quote, comma, or newline
// are quote-wrapped with internal quotes doubled. Rendering is pure; the
// file save is a thin caller-owned side effect.
package export
