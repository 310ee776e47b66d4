package repository

import "github.com/itzmejanak/devalaya-backend/internal/model"

// CardRepository is a read-only lookup of digital business cards,
// keyed by normalized slug. Backed by a fixed in-process table today;
// the interface in the service layer lets it move into the document
// store later without touching callers.
type CardRepository struct {
	cards map[string]model.CardRecord
}

// NewCardRepository creates the card repository with the built-in
// card table.
func NewCardRepository() *CardRepository {
	return &CardRepository{cards: cardTable}
}

// Get returns the card for a normalized slug.
func (r *CardRepository) Get(slug string) (*model.CardRecord, error) {
	card, ok := r.cards[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return &card, nil
}

// cardTable holds every issued digital business card. Adding a card
// is a code change.
var cardTable = map[string]model.CardRecord{
	"aakasmik-ghimire": {
		Slug:    "aakasmik-ghimire",
		Name:    "Aakasmik Ghimire",
		Title:   "Chief Executive Officer",
		Phone:   "+977-9851000001",
		Email:   "aakasmik@devalaya.com.np",
		Address: "Kathmandu, Nepal",
		PDFPath: "/cards/aakasmik-ghimire.pdf",
	},
	"janak-devkota": {
		Slug:    "janak-devkota",
		Name:    "Janak Devkota",
		Title:   "Chief Technology Officer",
		Phone:   "+977-9851000002",
		Email:   "janak@devalaya.com.np",
		Address: "Kathmandu, Nepal",
	},
	"sujata-adhikari": {
		Slug:    "sujata-adhikari",
		Name:    "Sujata Adhikari",
		Title:   "Head of Design",
		Phone:   "+977-9851000003",
		Email:   "sujata@devalaya.com.np",
		Address: "Lalitpur, Nepal",
	},
	"bibek-shrestha": {
		Slug:    "bibek-shrestha",
		Name:    "Bibek Shrestha",
		Title:   "Business Development Manager",
		Phone:   "+977-9851000004",
		Email:   "bibek@devalaya.com.np",
		Address: "Bhaktapur, Nepal",
		PDFPath: "/cards/bibek-shrestha.pdf",
	},
}
