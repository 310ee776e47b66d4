package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzmejanak/devalaya-backend/internal/repository"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"aakasmik-ghimire", "aakasmik-ghimire"},
		{"Aakasmik Ghimire", "aakasmik-ghimire"},
		{"AAKASMIK%20GHIMIRE", "aakasmik-ghimire"},
		{"  aakasmik   ghimire  ", "aakasmik-ghimire"},
		{"aakasmik--ghimire", "aakasmik-ghimire"},
		{"-aakasmik-ghimire-", "aakasmik-ghimire"},
		{"S%C3%BAjata Adhik%C3%A1ri", "sujata-adhikari"},
		{"Sújata Adhikári", "sujata-adhikari"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSlug(tt.raw))
		})
	}
}

func TestCardResolve(t *testing.T) {
	svc := NewCardService(repository.NewCardRepository())

	// Every variant of the same name resolves to one record.
	for _, raw := range []string{"aakasmik-ghimire", "Aakasmik Ghimire", "AAKASMIK%20GHIMIRE"} {
		card, err := svc.Resolve(raw)
		require.NoError(t, err, "raw slug %q", raw)
		assert.Equal(t, "aakasmik-ghimire", card.Slug)
		assert.Equal(t, "Aakasmik Ghimire", card.Name)
	}

	card, err := svc.Resolve("janak-devkota")
	require.NoError(t, err)
	assert.Empty(t, card.PDFPath)

	_, err = svc.Resolve("nobody-here")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
