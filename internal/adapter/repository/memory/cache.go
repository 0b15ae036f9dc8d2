package memory

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
	"github.com/iho/payengine/internal/usecase"
)

// CachedStore decorates a TransactionStore with a fixed-size LRU cache over
// recently used transactions. It is behaviorally transparent: every
// operation has the same outcome as on the underlying store, the cache only
// amortizes repeated lookups of the same id. The single processing thread
// is the only writer, so no synchronization beyond the cache's own is
// needed.
type CachedStore struct {
	store   usecase.TransactionStore
	cache   *lru.Cache[uint32, entry]
	metrics *metrics.Metrics
}

// NewCachedStore wraps store with an LRU cache of the given size.
func NewCachedStore(store usecase.TransactionStore, size int, m *metrics.Metrics) (*CachedStore, error) {
	cache, err := lru.New[uint32, entry](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{store: store, cache: cache, metrics: m}, nil
}

// Store passes through and caches the freshly committed record.
func (c *CachedStore) Store(t domain.Transaction) {
	c.store.Store(t)
	c.cache.Add(t.ID, entry{record: t, state: domain.StateCommitted})
}

// Access serves from the cache when possible and falls back to the store,
// populating the cache on a hit there.
func (c *CachedStore) Access(id uint32) (domain.Transaction, domain.TxState, bool) {
	if e, ok := c.cache.Get(id); ok {
		c.hit()
		return e.record, e.state, true
	}
	c.miss()
	record, state, ok := c.store.Access(id)
	if ok {
		c.cache.Add(id, entry{record: record, state: state})
	}
	return record, state, ok
}

// Update passes through to the store and keeps any cached state in sync
// with the committed transition.
func (c *CachedStore) Update(id uint32, state domain.TxState) (domain.Transaction, error) {
	record, err := c.store.Update(id, state)
	if err != nil {
		return domain.Transaction{}, err
	}
	if e, ok := c.cache.Peek(id); ok {
		e.state = state
		c.cache.Add(id, e)
	}
	return record, nil
}

func (c *CachedStore) hit() {
	if c.metrics != nil {
		c.metrics.CacheHits.Inc()
	}
}

func (c *CachedStore) miss() {
	if c.metrics != nil {
		c.metrics.CacheMisses.Inc()
	}
}
