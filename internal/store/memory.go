package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// MemorySourceStore is an in-memory SourceResultStore for tests and
// local runs.
type MemorySourceStore struct {
	mu   sync.RWMutex
	jobs map[string][]models.SourceResult
}

func NewMemorySourceStore() *MemorySourceStore {
	return &MemorySourceStore{jobs: make(map[string][]models.SourceResult)}
}

func (s *MemorySourceStore) AddResults(jobID string, results ...models.SourceResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = append(s.jobs[jobID], results...)
}

func (s *MemorySourceStore) FetchResultsForJob(_ context.Context, jobID string) ([]models.SourceResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SourceResult(nil), s.jobs[jobID]...), nil
}

// MemoryResultStore is an in-memory AnalysisResultStore.
type MemoryResultStore struct {
	mu      sync.RWMutex
	results map[string]models.AnalysisResult
	links   map[string][]string
}

func NewMemoryResultStore() *MemoryResultStore {
	return &MemoryResultStore{
		results: make(map[string]models.AnalysisResult),
		links:   make(map[string][]string),
	}
}

func (s *MemoryResultStore) Save(_ context.Context, result models.AnalysisResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	s.results[result.ID] = result
	return result.ID, nil
}

func (s *MemoryResultStore) LinkResults(_ context.Context, sourceResultID string, analysisResultIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[sourceResultID] = append(s.links[sourceResultID], analysisResultIDs...)
	return nil
}

func (s *MemoryResultStore) Get(id string) (models.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[id]
	return r, ok
}

func (s *MemoryResultStore) Links(sourceResultID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.links[sourceResultID]...)
}

func (s *MemoryResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// MemoryProcessedCache is an in-memory ProcessedCache.
type MemoryProcessedCache struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

func NewMemoryProcessedCache() *MemoryProcessedCache {
	return &MemoryProcessedCache{seen: make(map[string]struct{})}
}

func (c *MemoryProcessedCache) MarkProcessed(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[id] = struct{}{}
	return nil
}

func (c *MemoryProcessedCache) IsProcessed(_ context.Context, id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.seen[id]
	return ok
}
