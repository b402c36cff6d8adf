package docstore

//go:generate go run go.uber.org/mock/mockgen -source=./docstore.go -destination=./mocks/docstore_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"streakhub/config"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("document not found")

const (
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Store is a minimal document store over named collections. The file driver
// keeps one flat JSON document per collection and rewrites it wholesale on
// every mutation; the memory driver backs tests and local runs.
type Store interface {
	Get(ctx context.Context, collection, id string, out any) error
	Put(ctx context.Context, collection, id string, doc any) error
	Delete(ctx context.Context, collection, id string) error
	All(ctx context.Context, collection string) (map[string]json.RawMessage, error)
}

func New(cfg *config.Config) Store {
	switch cfg.Docstore.Driver {
	case DriverMemory:
		log.Info().Msg("Using in-memory document store")

		return NewMemoryStore()
	default:
		dir := cfg.Docstore.DataDir
		if dir == "" {
			dir = "data"
		}

		log.Info().Str("dir", dir).Msg("Using file document store")

		return NewFileStore(dir)
	}
}

type fileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) Store {
	return &fileStore{dir: dir}
}

func (s *fileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// load reads a whole collection file. A missing file is an empty collection.
func (s *fileStore) load(collection string) (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path(collection))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	docs := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", collection, err)
	}

	return docs, nil
}

func (s *fileStore) save(collection string, docs map[string]json.RawMessage) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create docstore dir: %w", err)
	}

	raw, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	if err := os.WriteFile(s.path(collection), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	return nil
}

func (s *fileStore) Get(_ context.Context, collection, id string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}

	raw, ok := docs[id]
	if !ok {
		return ErrNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *fileStore) Put(_ context.Context, collection, id string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}

	docs[id] = raw

	return s.save(collection, docs)
}

func (s *fileStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}

	if _, ok := docs[id]; !ok {
		return ErrNotFound
	}

	delete(docs, id)

	return s.save(collection, docs)
}

func (s *fileStore) All(_ context.Context, collection string) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(collection)
}

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
}

func NewMemoryStore() Store {
	return &memoryStore{
		collections: make(map[string]map[string]json.RawMessage),
	}
}

func (s *memoryStore) Get(_ context.Context, collection, id string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *memoryStore) Put(_ context.Context, collection, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]json.RawMessage)
	}

	s.collections[collection][id] = raw

	return nil
}

func (s *memoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}

	delete(s.collections[collection], id)

	return nil
}

func (s *memoryStore) All(_ context.Context, collection string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]json.RawMessage, len(s.collections[collection]))
	for id, raw := range s.collections[collection] {
		out[id] = raw
	}

	return out, nil
}
