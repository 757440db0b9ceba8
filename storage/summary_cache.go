package storage

import (
	"time"

	"github.com/ReneKroon/ttlcache"
	"go.etcd.io/bbolt"
)

const SummaryTimeout = time.Minute

// SummaryCache fronts SessionCounts with a TTL cache, so repeated report
// builds do not rescan the whole spin history.
type SummaryCache struct {
	db    *bbolt.DB
	cache *ttlcache.Cache
}

func NewSummaryCache(db *bbolt.DB) *SummaryCache {
	return &SummaryCache{
		db:    db,
		cache: ttlcache.NewCache(),
	}
}

func (sc *SummaryCache) SessionCounts(sessionName string) (map[string]uint64, error) {
	if cached, found := sc.cache.Get(sessionName); found {
		return cached.(map[string]uint64), nil
	}
	counts, err := SessionCounts(sc.db, sessionName)
	if err != nil {
		return nil, err
	}
	sc.cache.SetWithTTL(sessionName, counts, SummaryTimeout)
	return counts, nil
}

func (sc *SummaryCache) Invalidate(sessionName string) {
	sc.cache.Remove(sessionName)
}
