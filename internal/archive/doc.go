// Package archive reads exported flashcard packages as in-memory zip
// containers. It exposes entry enumeration and binary-safe entry reads; it
// knows nothing about collection variants or card data.
package archive
