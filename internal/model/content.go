package model

import "encoding/json"

// ContentRecord is a schemaless record from the external content API
// or the bundled snapshot. The backend never interprets its fields.
type ContentRecord = json.RawMessage

// ContentPayload is the shape the content proxy returns. Callers
// cannot tell live data from fallback data by looking at it.
type ContentPayload struct {
	Success    bool            `json:"success"`
	Data       []ContentRecord `json:"data"`
	Collection string          `json:"collection"`
}

// contentCollections is the fixed allow-list of collection names the
// proxy will forward. Anything else is rejected before any outbound
// call is made.
var contentCollections = map[string]struct{}{
	"services":     {},
	"testimonials": {},
	"hero":         {},
	"stats":        {},
	"clients":      {},
	"team":         {},
}

// KnownContentCollection reports whether name is on the proxy
// allow-list.
func KnownContentCollection(name string) bool {
	_, ok := contentCollections[name]
	return ok
}
