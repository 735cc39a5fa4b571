package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"naeilum-be/pkg/store"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, sweep time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, sweep),
	}
}

// GetOrCreate resolves the session slot for an id, creating it on first use.
// cache.Add loses the race to a concurrent creator, in which case the winner's
// slot is returned so both requests mutate the same session.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	for {
		if x, found := r.cache.Get(sessionID); found {
			return x.(*store.Session)
		}
		s := &store.Session{ID: sessionID}
		if err := r.cache.Add(sessionID, s, cache.DefaultExpiration); err == nil {
			return s
		}
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// Save refreshes the session's expiration.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
