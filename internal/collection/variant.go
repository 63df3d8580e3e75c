package collection

import "errors"

// ErrNoCollection marks archives that contain none of the known collection
// entry names. It is fatal for the affected archive only.
var ErrNoCollection = errors.New("no collection database found in archive")

// Variant identifies one of the known on-disk collection formats.
type Variant int

const (
	// VariantAnki21b is the current export format, zstd compressed.
	VariantAnki21b Variant = iota
	// VariantAnki21 is the intermediate export format, zstd compressed.
	VariantAnki21
	// VariantAnki2 is the legacy format, a raw SQLite image.
	VariantAnki2
)

// detectionOrder lists variants by priority. Newer formats win because
// exports frequently ship a legacy stub next to the real collection.
var detectionOrder = []Variant{VariantAnki21b, VariantAnki21, VariantAnki2}

// EntryName returns the zip entry name the variant is stored under.
func (v Variant) EntryName() string {
	switch v {
	case VariantAnki21b:
		return "collection.anki21b"
	case VariantAnki21:
		return "collection.anki21"
	case VariantAnki2:
		return "collection.anki2"
	default:
		return "unknown"
	}
}

// Compressed reports whether the variant's entry holds a zstd frame rather
// than a raw database image.
func (v Variant) Compressed() bool {
	return v == VariantAnki21b || v == VariantAnki21
}

// String returns the entry name for logging.
func (v Variant) String() string { return v.EntryName() }

// Detect selects the highest-priority variant present among the archive's
// entry names. Entry enumeration order does not matter.
func Detect(entries []string) (Variant, error) {
	present := make(map[string]bool, len(entries))
	for _, name := range entries {
		present[name] = true
	}
	for _, variant := range detectionOrder {
		if present[variant.EntryName()] {
			return variant, nil
		}
	}
	return 0, ErrNoCollection
}
