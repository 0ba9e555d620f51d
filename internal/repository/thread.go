package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// sharedReadTimeout bounds a store read shared by concurrent cache misses.
const sharedReadTimeout = 5 * time.Second

// threadRepository is the coordination layer between the thread store, the
// header cache and the thread id bloom index.
type threadRepository struct {
	db           domain.ThreadDBRepository
	cache        domain.ThreadCache
	bloom        domain.BloomRepository
	rebuildGroup singleflight.Group

	// addFailures counts failed bloom Adds. syncedThrough is the count
	// covered by the last completed resync. While they differ the index may
	// miss stored ids and its negative answers are ignored.
	addFailures   atomic.Uint64
	syncedThrough atomic.Uint64
}

var (
	_ domain.ThreadDBRepository = (*threadRepository)(nil)
	_ domain.ThreadIndexGuard   = (*threadRepository)(nil)
)

// NewThreadRepository will create the coordination layer for threads
func NewThreadRepository(db domain.ThreadDBRepository, cache domain.ThreadCache, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		cache: cache,
		bloom: bloom,
	}
}

// AddThread stores the thread and then registers its id in the bloom index.
// If the bloom write fails the index is marked degraded and lookups go to the
// store until the next completed resync.
func (r *threadRepository) AddThread(ctx context.Context, owner string, t domain.NewThread) (domain.AddedThread, error) {
	added, err := r.db.AddThread(ctx, owner, t)
	if err != nil {
		return domain.AddedThread{}, err
	}
	if err := r.bloom.Add(ctx, added.ID); err != nil {
		r.addFailures.Add(1)
		logrus.Errorf("failed to add thread %s to bloom index, index degraded until resync: %v", added.ID, err)
	}
	return added, nil
}

// CheckThreadAvailability trusts a negative bloom answer while the index is
// healthy and asks the store otherwise.
func (r *threadRepository) CheckThreadAvailability(ctx context.Context, threadID string) error {
	if r.definitelyAbsent(ctx, threadID) {
		return domain.ErrThreadNotFound
	}
	return r.db.CheckThreadAvailability(ctx, threadID)
}

// GetThreadByID reads through the header cache. Concurrent misses for the
// same id share one store lookup.
func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRecord, error) {
	if r.definitelyAbsent(ctx, threadID) {
		return domain.ThreadRecord{}, domain.ErrThreadNotFound
	}

	rec, err := r.cache.GetThread(ctx, threadID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("thread cache read failed for %s: %v", threadID, err)
	}

	result, err, _ := r.rebuildGroup.Do("thread:"+threadID, func() (any, error) {
		// one caller giving up must not fail the others waiting on this key
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedReadTimeout)
		defer cancel()

		rec, err := r.db.GetThreadByID(sctx, threadID)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetThread(sctx, rec); err != nil {
			logrus.Warnf("failed to cache thread %s: %v", threadID, err)
		}
		return rec, nil
	})
	if err != nil {
		return domain.ThreadRecord{}, err
	}
	return result.(domain.ThreadRecord), nil
}

func (r *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

func (r *threadRepository) IndexSyncStarted() uint64 {
	return r.addFailures.Load()
}

func (r *threadRepository) IndexSynced(token uint64) {
	for {
		cur := r.syncedThrough.Load()
		if token <= cur || r.syncedThrough.CompareAndSwap(cur, token) {
			return
		}
	}
}

func (r *threadRepository) indexDegraded() bool {
	return r.addFailures.Load() > r.syncedThrough.Load()
}

func (r *threadRepository) definitelyAbsent(ctx context.Context, threadID string) bool {
	if r.indexDegraded() {
		return false
	}
	ok, err := r.bloom.Exists(ctx, threadID)
	if err != nil {
		logrus.Warnf("bloom lookup failed for %s, falling back to store: %v", threadID, err)
		return false
	}
	return !ok
}
