package model

// CardRecord is a digital business card resolved from a URL slug.
// The card table is read-only at runtime; changing it is a code
// change.
type CardRecord struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	// PDFPath, when set, points at a pre-built embeddable PDF for the
	// card. Empty means the card view is synthesized from the fields
	// above.
	PDFPath string `json:"pdfPath,omitempty"`
}
