// Package cards defines the normalized card model and the derived views
// downstream consumers build on it: tag summaries, study subsets, and deck
// display titles.
//
// A note's field blob is segmented on the ASCII unit separator (0x1F): the
// first segment is the card front, the rest join into the back. Field
// content is free-form and may carry HTML; nothing here sanitizes it.
package cards
