// Package session keeps campaign state in memory for the lifetime of the
// process. Generated assets are never persisted; a browser session polls a
// campaign until every slot is terminal.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"server/internal/adgen"
)

// ErrNotFound is returned for unknown campaign IDs.
var ErrNotFound = errors.New("campaign not found")

// Status is the campaign-level lifecycle state.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type campaign struct {
	id        string
	status    Status
	options   adgen.CampaignOptions
	items     []adgen.ItemResult
	createdAt time.Time
	updatedAt time.Time
}

// Snapshot is a point-in-time copy of one campaign, safe for callers to keep.
type Snapshot struct {
	ID        string
	Status    Status
	Options   adgen.CampaignOptions
	Items     []adgen.ItemResult
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store holds active campaigns. One mutex serializes access; each generation
// task writes to its own slot, so contention stays negligible at campaign
// scale.
type Store struct {
	mu        sync.Mutex
	campaigns map[string]*campaign
}

func NewStore() *Store {
	return &Store{campaigns: make(map[string]*campaign)}
}

// Create registers a new running campaign with every slot pending and
// returns its ID.
func (s *Store) Create(opts adgen.CampaignOptions) string {
	items := make([]adgen.ItemResult, adgen.CampaignSize)
	for i := range items {
		items[i] = adgen.ItemResult{Status: adgen.ItemStatusPending}
	}
	now := time.Now()
	c := &campaign{
		id:        uuid.NewString(),
		status:    StatusRunning,
		options:   opts,
		items:     items,
		createdAt: now,
		updatedAt: now,
	}

	s.mu.Lock()
	s.campaigns[c.id] = c
	s.mu.Unlock()
	return c.id
}

// SetItem records one slot's terminal result. A slot transitions out of
// pending exactly once; later writes to the same slot are dropped.
func (s *Store) SetItem(id string, index int, res adgen.ItemResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok || index < 0 || index >= len(c.items) {
		return
	}
	if c.items[index].Status != adgen.ItemStatusPending {
		return
	}
	c.items[index] = res
	c.updatedAt = time.Now()
}

// Complete marks a running campaign finished. Individual slot failures do
// not prevent completion.
func (s *Store) Complete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.campaigns[id]; ok && c.status == StatusRunning {
		c.status = StatusCompleted
		c.updatedAt = time.Now()
	}
}

// Fail marks the campaign failed and errors every still-pending slot with the
// given message. Used when the research phase aborts the whole run.
func (s *Store) Fail(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return
	}
	c.status = StatusFailed
	for i := range c.items {
		if c.items[i].Status == adgen.ItemStatusPending {
			c.items[i] = adgen.ItemResult{Status: adgen.ItemStatusError, Message: message}
		}
	}
	c.updatedAt = time.Now()
}

// Get returns a snapshot of one campaign.
func (s *Store) Get(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	items := make([]adgen.ItemResult, len(c.items))
	copy(items, c.items)
	return Snapshot{
		ID:        c.id,
		Status:    c.status,
		Options:   c.options,
		Items:     items,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}, nil
}
