// Command cardstock ingests exported flashcard packages and presents their
// cards for listing, tag-filtered study runs, and CSV export.
package main
