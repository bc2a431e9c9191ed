package rules

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxDescriptionLength — порог длины описания примера по умолчанию.
const DefaultMaxDescriptionLength = 60

// Config holds the knobs shared by all rules.
type Config struct {
	// MaxDescriptionLength is the display-width threshold for example
	// descriptions, checked by example-description-length.
	MaxDescriptionLength int
}

// DefaultConfig returns the configuration the rules ship with.
func DefaultConfig() Config {
	return Config{
		MaxDescriptionLength: DefaultMaxDescriptionLength,
	}
}

// DescriptionWidth returns the display width of a description. The text is
// NFC-normalized first so that a decomposed accent does not count twice;
// wide CJK runes count as two columns, как их и рисует терминал.
func DescriptionWidth(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}
