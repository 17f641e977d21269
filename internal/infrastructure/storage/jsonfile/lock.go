package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const flockRetryDelay = 10 * time.Millisecond

// LockRegistry hands out one lock per collection file path. Each lock
// combines an in-process semaphore with a flock on a sibling ".lock" file, so
// read-modify-write cycles are serialized across goroutines and across OS
// processes sharing the same data directory.
type LockRegistry struct {
	mu      sync.Mutex
	locks   map[string]*pathLock
	timeout time.Duration
}

type pathLock struct {
	sem chan struct{}
	fl  *flock.Flock
}

// NewLockRegistry creates a registry whose Acquire calls give up after
// timeout and return ErrLockTimeout.
func NewLockRegistry(timeout time.Duration) *LockRegistry {
	return &LockRegistry{
		locks:   make(map[string]*pathLock),
		timeout: timeout,
	}
}

func (r *LockRegistry) get(path string) *pathLock {
	r.mu.Lock()
	defer r.mu.Unlock()

	pl, ok := r.locks[path]
	if !ok {
		pl = &pathLock{
			sem: make(chan struct{}, 1),
			fl:  flock.New(path + ".lock"),
		}
		r.locks[path] = pl
	}
	return pl
}

// Acquire blocks until the lock for path is held or the timeout elapses.
// The returned release function must be called exactly once, on every exit
// path of the critical section.
//
// The collection directory is created here first: the lock file lives next
// to the collection file, so the very first write into a fresh data
// directory must be able to open it.
func (r *LockRegistry) Acquire(ctx context.Context, path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dir for %s: %w", path, err)
	}

	pl := r.get(path)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	select {
	case pl.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ErrLockTimeout
	}

	ok, err := pl.fl.TryLockContext(ctx, flockRetryDelay)
	if !ok {
		<-pl.sem
		if err == nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("acquire flock for %s: %w", path, err)
	}

	return func() {
		_ = pl.fl.Unlock()
		<-pl.sem
	}, nil
}
