package service

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/itzmejanak/devalaya-backend/internal/model"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// CardStore is a read-only lookup of card records by normalized slug.
type CardStore interface {
	Get(slug string) (*model.CardRecord, error)
}

// CardService resolves URL-path identifiers to digital business
// cards.
type CardService struct {
	cards CardStore
}

// NewCardService creates a new CardService.
func NewCardService(cards CardStore) *CardService {
	return &CardService{cards: cards}
}

// Resolve normalizes a raw slug and looks it up. "Aakasmik Ghimire",
// "aakasmik-ghimire", and "AAKASMIK%20GHIMIRE" all resolve to the
// same record.
func (s *CardService) Resolve(rawSlug string) (*model.CardRecord, error) {
	return s.cards.Get(NormalizeSlug(rawSlug))
}

// NormalizeSlug URL-decodes, strips accents, lowercases, and replaces
// whitespace runs with single hyphens.
func NormalizeSlug(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}

	// Decompose accented characters and drop the combining marks.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, raw)
	if err == nil {
		raw = folded
	}

	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
