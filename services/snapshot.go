package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// SnapshotService exports the whole storage namespace as one JSON document,
// for off-site backup of the board. Keys with nothing stored are skipped;
// a snapshot of an untouched installation is empty and not uploaded.
type SnapshotService struct {
	store    Store
	profiles *ProfileService
	log      *zap.Logger
}

func NewSnapshotService(store Store, profiles *ProfileService, log *zap.Logger) *SnapshotService {
	return &SnapshotService{store: store, profiles: profiles, log: log}
}

// Build collects every stored key into a single blob-per-key document.
func (s *SnapshotService) Build() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	for _, key := range AllKeys {
		raw, ok := s.store.LoadRaw(key)
		if !ok {
			continue
		}
		doc[key] = raw
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("nothing stored yet")
	}
	s.log.Debug("snapshot built", zap.Int("keys", len(doc)))
	return doc, nil
}

// ObjectKey names the snapshot after the owner and the moment it was taken,
// e.g. "snapshots/utente/2026-08-30T10-00-00Z.json".
func (s *SnapshotService) ObjectKey(now time.Time) string {
	owner := "board"
	if profile, ok := s.profiles.Peek(); ok && profile.Username != "" {
		owner = slug.Make(profile.Username)
	}
	stamp := now.UTC().Format("2006-01-02T15-04-05Z")
	return fmt.Sprintf("snapshots/%s/%s.json", owner, stamp)
}

// Marshal renders the snapshot document for upload.
func (s *SnapshotService) Marshal() ([]byte, string, error) {
	doc, err := s.Build()
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return data, s.ObjectKey(time.Now()), nil
}
