// Package expcache caches generated concept explanations per session
// so repeated "learn more" clicks do not re-invoke the generation
// service. Two tiers: an in-memory map scoped to one active session
// view, and a durable-but-ephemeral per-session partition written
// through on every mutation. Entries never expire by time; the only
// invalidation path is explicit regeneration.
package expcache

import (
	"context"
	"sync"

	"github.com/Karoll-e/career-boost/internal/ai"
)

// Explainer is the slice of the generator the cache needs.
type Explainer interface {
	Explain(ctx context.Context, question string) (*ai.Explanation, error)
}

// Cache holds the explanations for one session view. The in-memory
// entries map is primary; the persisted store hangs behind it via
// write-through.
type Cache struct {
	sessionID string
	explainer Explainer
	store     Store

	mu      sync.Mutex
	entries map[uint]ai.Explanation

	// current is the question the active view cares about. A late
	// result for a superseded question is discarded, not cached.
	current uint
}

// newCache loads the persisted partition wholesale into memory. Read
// failures degrade to an empty cache.
func newCache(sessionID string, explainer Explainer, store Store) *Cache {
	entries, err := store.Load(sessionID)
	if err != nil || entries == nil {
		entries = map[uint]ai.Explanation{}
	}
	return &Cache{
		sessionID: sessionID,
		explainer: explainer,
		store:     store,
		entries:   entries,
	}
}

// Peek returns the cached entry without generating.
func (c *Cache) Peek(questionID uint) (ai.Explanation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	exp, ok := c.entries[questionID]
	return exp, ok
}

// GetOrGenerate returns the cached explanation for questionID, or
// generates one. forceRegenerate skips the cache lookup and, on
// success, clobbers the existing entry; on failure the prior entry
// stays retrievable. A generation failure is never written to either
// tier.
func (c *Cache) GetOrGenerate(ctx context.Context, questionID uint, questionText string, forceRegenerate bool) (*ai.Explanation, error) {
	c.mu.Lock()
	if !forceRegenerate {
		if exp, ok := c.entries[questionID]; ok {
			c.mu.Unlock()
			return &exp, nil
		}
	}
	// this question is now the view's current target
	c.current = questionID
	c.mu.Unlock()

	exp, err := c.explainer.Explain(ctx, questionText)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != questionID {
		// superseded while in flight; hand the result back but keep
		// it out of the cache
		return exp, nil
	}
	c.entries[questionID] = *exp
	c.writeThroughLocked()
	return exp, nil
}

// writeThroughLocked re-serializes the whole map to the persisted
// store. That tier is advisory, so a failed write only costs a future
// re-fetch.
func (c *Cache) writeThroughLocked() {
	snapshot := make(map[uint]ai.Explanation, len(c.entries))
	for k, v := range c.entries {
		snapshot[k] = v
	}
	_ = c.store.Save(c.sessionID, snapshot)
}

// Manager hands out one Cache per session id and drops partitions
// when their session goes away.
type Manager struct {
	explainer Explainer
	store     Store

	mu     sync.Mutex
	caches map[string]*Cache
}

func NewManager(explainer Explainer, store Store) *Manager {
	return &Manager{
		explainer: explainer,
		store:     store,
		caches:    make(map[string]*Cache),
	}
}

// For returns the cache for a session view, creating it (and loading
// its persisted partition) on first use.
func (m *Manager) For(sessionID string) *Cache {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.caches[sessionID]
	if !ok {
		c = newCache(sessionID, m.explainer, m.store)
		m.caches[sessionID] = c
	}
	return c
}

// Drop discards the in-memory cache and deletes the persisted
// partition. Called when the session itself is deleted; later lookups
// start from a miss.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.caches, sessionID)
	m.mu.Unlock()
	_ = m.store.Drop(sessionID)
}

// Release discards only the in-memory tier, ending the session view.
// The persisted partition survives so a reload avoids a re-fetch.
func (m *Manager) Release(sessionID string) {
	m.mu.Lock()
	delete(m.caches, sessionID)
	m.mu.Unlock()
}
