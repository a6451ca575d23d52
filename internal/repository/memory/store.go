// Package memory implements the repository over in-memory collections. It is
// the single source of truth for entities; derived views are recomputed from
// its snapshots and never stored back.
package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Memory holds the canonical entity collections, seeded with mock records on
// start. Collection order is significant: contacts, deals and tasks keep
// newest first, users keep insertion order.
type Memory struct {
	baseCtx context.Context
	log     *zap.SugaredLogger

	mu       sync.RWMutex
	contacts []entities.Contact
	deals    []entities.Deal
	tasks    []entities.Task
	users    []entities.User

	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a memory repository instance.
func New(ctx context.Context, log *zap.SugaredLogger) *Memory {
	return &Memory{
		baseCtx: ctx,
		log:     log.Named("repo.memory"),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		now:     time.Now,
	}
}

// OnStart loads the seed collections.
func (m *Memory) OnStart(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.contacts = seedContacts()
	m.deals = seedDeals(m.contacts)
	m.tasks = seedTasks()
	m.users = seedUsers()

	m.log.Infow("memory store ready",
		"contacts", len(m.contacts),
		"deals", len(m.deals),
		"tasks", len(m.tasks),
		"users", len(m.users),
	)
	return nil
}

// OnStop releases nothing; collections die with the process.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// newID returns a fresh monotonic, time-derived id. Callers hold m.mu.
func (m *Memory) newID() string {
	return ulid.MustNew(ulid.Timestamp(m.now()), m.entropy).String()
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
