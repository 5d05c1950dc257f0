package clinic

import (
	"context"
	"sync"

	redisclient "github.com/odontotech/clinic-scheduling/internal/redis"
)

// localLocker serializes slot bookings within a single process using one
// mutex per slot key. It is the default Locker; the Redis locker takes its
// place when several instances share a Postgres store.
type localLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocalLocker() redisclient.Locker {
	return &localLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *localLocker) WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	defer m.Unlock()

	return fn(ctx)
}
