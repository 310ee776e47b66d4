package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/content"
	"github.com/itzmejanak/devalaya-backend/internal/model"
)

// ErrUnknownCollection rejects collection names outside the proxy
// allow-list before any outbound call is made.
var ErrUnknownCollection = errors.New("unknown content collection")

// ContentService serves non-admin-editable site content from the
// external collection API, substituting the bundled snapshot whenever
// the live response is unusable. This is the only place that decision
// lives.
type ContentService struct {
	cfg    *config.Config
	client *http.Client
	snap   *content.Snapshot
	log    zerolog.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(cfg *config.Config, snap *content.Snapshot, log zerolog.Logger) *ContentService {
	return &ContentService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		snap:   snap,
		log:    log,
	}
}

// FetchCollection returns the records for a collection name. The
// external payload wins if and only if the request succeeds with a
// 2xx status AND decodes to a non-empty array; in every other case
// the snapshot entry is returned instead. Callers get a uniform
// success shape either way; only the log tells live from fallback.
func (s *ContentService) FetchCollection(ctx context.Context, name string) (*model.ContentPayload, error) {
	if !model.KnownContentCollection(name) {
		return nil, ErrUnknownCollection
	}

	records, err := s.fetchExternal(ctx, name)
	if err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("Content API unusable, serving snapshot")
		records = s.snap.Collection(name)
	} else {
		s.log.Debug().Str("collection", name).Int("records", len(records)).Msg("Content API live")
	}

	return &model.ContentPayload{
		Success:    true,
		Data:       records,
		Collection: name,
	}, nil
}

// fetchExternal queries the hosted collection API. Every failure mode
// (transport error, non-2xx status, undecodable body, empty array)
// returns an error so the caller falls back.
func (s *ContentService) fetchExternal(ctx context.Context, name string) ([]model.ContentRecord, error) {
	url := fmt.Sprintf("%s/%s/%s", s.cfg.ContentAPIBaseURL, s.cfg.ContentAPIDatabase, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", s.cfg.ContentAPIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var records []model.ContentRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty payload")
	}

	return records, nil
}
