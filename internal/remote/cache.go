package remote

import (
	"context"
	"encoding/json"
	"log"

	"applydesk-engine/internal/store"
)

// The cache never fails upward: a broken read behaves like an empty cache
// and a broken write leaves the previous value in place, logged either way.

func (s *Service) CachedCandidate() *Candidate {
	ctx := context.Background()
	val, ok, err := store.Get(ctx, s.db.Pool, store.KeyCandidate)
	if err != nil {
		log.Printf("[cache] candidate read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var c Candidate
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		log.Printf("[cache] candidate decode failed: %v", err)
		return nil
	}
	return &c
}

func (s *Service) CacheCandidate(c Candidate) {
	b, err := json.Marshal(c)
	if err != nil {
		log.Printf("[cache] candidate encode failed: %v", err)
		return
	}
	if err := store.Put(context.Background(), s.db.Pool, store.KeyCandidate, string(b)); err != nil {
		log.Printf("[cache] candidate write failed: %v", err)
	}
}

func (s *Service) ClearCachedCandidate() {
	if err := store.Delete(context.Background(), s.db.Pool, store.KeyCandidate); err != nil {
		log.Printf("[cache] candidate clear failed: %v", err)
	}
}
