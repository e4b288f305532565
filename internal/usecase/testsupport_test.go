package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// memStore is an in-memory IBlobStore for exercising full load-mutate-save
// flows. Error injection cases use the generated gomock store instead.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, ownerID, key string) ([]byte, error) {
	return s.data[ownerID+"/"+key], nil
}

func (s *memStore) Set(_ context.Context, ownerID, key string, payload []byte) error {
	s.data[ownerID+"/"+key] = payload
	return nil
}

func (s *memStore) Delete(_ context.Context, ownerID, key string) error {
	delete(s.data, ownerID+"/"+key)
	return nil
}

func (s *memStore) putJSON(t *testing.T, ownerID, key string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal seed data: %v", err)
	}
	s.data[ownerID+"/"+key] = b
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
