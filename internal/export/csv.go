package export

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"cardstock/internal/cards"
)

// DefaultFilename is the fixed default name for exported CSV files.
const DefaultFilename = "anki_export_quizlet.csv"

var header = []string{"Term", "Definition"}

// Render produces the full CSV document for the cards. Rows are
// newline-joined with no trailing newline after the last card.
func Render(list []cards.Card) string {
	rows := make([]string, 0, len(list)+1)
	rows = append(rows, strings.Join(header, ","))
	for _, card := range list {
		term := escapeField(StripMarkup(card.Front))
		definition := escapeField(StripMarkup(card.Back))
		rows = append(rows, term+","+definition)
	}
	return strings.Join(rows, "\n")
}

// WriteFile renders the cards and saves them to path.
func WriteFile(list []cards.Card, path string) error {
	if err := os.WriteFile(path, []byte(Render(list)), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// StripMarkup reduces an HTML-bearing field to text content: <br> variants
// become newlines, all other tags are discarded, and entities are decoded.
// Malformed markup degrades gracefully; the tokenizer never fails, it just
// stops at end of input.
func StripMarkup(s string) string {
	var out strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return out.String()
		case html.TextToken:
			out.WriteString(tokenizer.Token().Data)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "br" {
				out.WriteByte('\n')
			}
		}
	}
}

// escapeField quote-wraps a field only when it contains a quote, comma, or
// newline, doubling internal quotes. Everything else passes through
// unchanged.
func escapeField(s string) string {
	if strings.ContainsAny(s, "\",\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
