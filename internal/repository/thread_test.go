package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

type threadDeps struct {
	db    *mocks.ThreadDBRepository
	cache *mocks.ThreadCache
	bloom *mocks.BloomRepository
}

func newThreadRepo() (domain.ThreadDBRepository, threadDeps) {
	d := threadDeps{
		db:    new(mocks.ThreadDBRepository),
		cache: new(mocks.ThreadCache),
		bloom: new(mocks.BloomRepository),
	}
	return repository.NewThreadRepository(d.db, d.cache, d.bloom), d
}

var header = domain.ThreadRecord{
	ID:       "thread-123",
	Title:    "sebuah thread",
	Body:     "sebuah body thread",
	Date:     time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC),
	Username: "dicoding",
}

func TestThreadRepository_AddThread(t *testing.T) {
	nt := domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread"}
	added := domain.AddedThread{ID: "thread-123", Title: nt.Title, Owner: "user-123"}

	t.Run("indexes-new-id", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.db.On("AddThread", mock.Anything, "user-123", nt).Return(added, nil).Once()
		d.bloom.On("Add", mock.Anything, "thread-123").Return(nil).Once()

		got, err := repo.AddThread(context.TODO(), "user-123", nt)

		require.NoError(t, err)
		assert.Equal(t, added, got)
		d.bloom.AssertExpectations(t)
	})

	t.Run("bloom-failure-falls-back-to-store", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.db.On("AddThread", mock.Anything, "user-123", nt).Return(added, nil).Once()
		d.bloom.On("Add", mock.Anything, "thread-123").Return(errors.New("redis down")).Once()
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(false, nil).Maybe()
		d.db.On("CheckThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()

		got, err := repo.AddThread(context.TODO(), "user-123", nt)
		require.NoError(t, err)
		assert.Equal(t, added, got)

		assert.NoError(t, repo.CheckThreadAvailability(context.TODO(), "thread-123"))
		d.db.AssertExpectations(t)
	})

	t.Run("store-error", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.db.On("AddThread", mock.Anything, "user-123", nt).Return(domain.AddedThread{}, domain.ErrInternalServerError).Once()

		_, err := repo.AddThread(context.TODO(), "user-123", nt)

		assert.ErrorIs(t, err, domain.ErrInternalServerError)
		d.bloom.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestThreadRepository_CheckThreadAvailability(t *testing.T) {
	t.Run("bloom-absent-skips-store", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-404").Return(false, nil).Once()

		err := repo.CheckThreadAvailability(context.TODO(), "thread-404")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		d.db.AssertNotCalled(t, "CheckThreadAvailability", mock.Anything, mock.Anything)
	})

	t.Run("bloom-maybe-asks-store", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
		d.db.On("CheckThreadAvailability", mock.Anything, "thread-123").Return(domain.ErrThreadNotFound).Once()

		err := repo.CheckThreadAvailability(context.TODO(), "thread-123")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		d.db.AssertExpectations(t)
	})

	t.Run("bloom-error-falls-back", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(false, errors.New("redis down")).Once()
		d.db.On("CheckThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()

		assert.NoError(t, repo.CheckThreadAvailability(context.TODO(), "thread-123"))
	})
}

func TestThreadRepository_GetThreadByID(t *testing.T) {
	t.Run("cache-hit", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
		d.cache.On("GetThread", mock.Anything, "thread-123").Return(header, nil).Once()

		got, err := repo.GetThreadByID(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, header, got)
		d.db.AssertNotCalled(t, "GetThreadByID", mock.Anything, mock.Anything)
	})

	t.Run("cache-miss-fills-cache", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
		d.cache.On("GetThread", mock.Anything, "thread-123").Return(domain.ThreadRecord{}, domain.ErrCacheMiss).Once()
		d.db.On("GetThreadByID", mock.Anything, "thread-123").Return(header, nil).Once()
		d.cache.On("SetThread", mock.Anything, header).Return(nil).Once()

		got, err := repo.GetThreadByID(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, header, got)
		d.cache.AssertExpectations(t)
		d.db.AssertExpectations(t)
	})

	t.Run("cache-error-still-served", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
		d.cache.On("GetThread", mock.Anything, "thread-123").Return(domain.ThreadRecord{}, errors.New("redis down")).Once()
		d.db.On("GetThreadByID", mock.Anything, "thread-123").Return(header, nil).Once()
		d.cache.On("SetThread", mock.Anything, header).Return(errors.New("redis down")).Once()

		got, err := repo.GetThreadByID(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, header, got)
	})

	t.Run("not-found-is-not-cached", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-404").Return(true, nil).Once()
		d.cache.On("GetThread", mock.Anything, "thread-404").Return(domain.ThreadRecord{}, domain.ErrCacheMiss).Once()
		d.db.On("GetThreadByID", mock.Anything, "thread-404").Return(domain.ThreadRecord{}, domain.ErrThreadNotFound).Once()

		_, err := repo.GetThreadByID(context.TODO(), "thread-404")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		d.cache.AssertNotCalled(t, "SetThread", mock.Anything, mock.Anything)
	})

	t.Run("shared-read-outlives-caller", func(t *testing.T) {
		repo, d := newThreadRepo()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		live := mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return ctx.Err() == nil && hasDeadline
		})
		d.bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
		d.cache.On("GetThread", mock.Anything, "thread-123").Return(domain.ThreadRecord{}, domain.ErrCacheMiss).Once()
		d.db.On("GetThreadByID", live, "thread-123").Return(header, nil).Once()
		d.cache.On("SetThread", live, header).Return(nil).Once()

		got, err := repo.GetThreadByID(ctx, "thread-123")

		require.NoError(t, err)
		assert.Equal(t, header, got)
		d.db.AssertExpectations(t)
	})

	t.Run("bloom-absent", func(t *testing.T) {
		repo, d := newThreadRepo()
		d.bloom.On("Exists", mock.Anything, "thread-404").Return(false, nil).Once()

		_, err := repo.GetThreadByID(context.TODO(), "thread-404")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		d.cache.AssertNotCalled(t, "GetThread", mock.Anything, mock.Anything)
	})
}

func TestThreadRepository_IndexGuard(t *testing.T) {
	nt := domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread"}
	added := domain.AddedThread{ID: "thread-123", Title: nt.Title, Owner: "user-123"}

	newDegraded := func(t *testing.T) (domain.ThreadDBRepository, domain.ThreadIndexGuard, threadDeps) {
		repo, d := newThreadRepo()
		d.db.On("AddThread", mock.Anything, "user-123", nt).Return(added, nil).Once()
		d.bloom.On("Add", mock.Anything, "thread-123").Return(errors.New("redis down")).Once()
		_, err := repo.AddThread(context.TODO(), "user-123", nt)
		require.NoError(t, err)
		return repo, repo.(domain.ThreadIndexGuard), d
	}

	t.Run("completed-resync-trusts-bloom-again", func(t *testing.T) {
		repo, guard, d := newDegraded(t)
		guard.IndexSynced(guard.IndexSyncStarted())
		d.bloom.On("Exists", mock.Anything, "thread-404").Return(false, nil).Once()

		err := repo.CheckThreadAvailability(context.TODO(), "thread-404")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		d.db.AssertNotCalled(t, "CheckThreadAvailability", mock.Anything, mock.Anything)
	})

	t.Run("failure-during-resync-stays-degraded", func(t *testing.T) {
		repo, guard, d := newDegraded(t)
		token := guard.IndexSyncStarted()

		d.db.On("AddThread", mock.Anything, "user-123", nt).Return(added, nil).Once()
		d.bloom.On("Add", mock.Anything, "thread-123").Return(errors.New("redis down")).Once()
		_, err := repo.AddThread(context.TODO(), "user-123", nt)
		require.NoError(t, err)
		guard.IndexSynced(token)

		d.db.On("GetThreadByID", mock.Anything, "thread-123").Return(header, nil).Once()
		d.cache.On("GetThread", mock.Anything, "thread-123").Return(domain.ThreadRecord{}, domain.ErrCacheMiss).Once()
		d.cache.On("SetThread", mock.Anything, header).Return(nil).Once()

		got, err := repo.GetThreadByID(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, header, got)
		d.bloom.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("stale-token-does-not-rewind", func(t *testing.T) {
		repo, guard, d := newDegraded(t)
		guard.IndexSynced(guard.IndexSyncStarted())
		guard.IndexSynced(0)
		d.bloom.On("Exists", mock.Anything, "thread-404").Return(false, nil).Once()

		assert.ErrorIs(t, repo.CheckThreadAvailability(context.TODO(), "thread-404"), domain.ErrThreadNotFound)
	})
}

func TestThreadRepository_FetchIDs(t *testing.T) {
	repo, d := newThreadRepo()
	d.db.On("FetchIDs", mock.Anything, "thread-1", 2).Return([]string{"thread-2", "thread-3"}, nil).Once()

	ids, err := repo.FetchIDs(context.TODO(), "thread-1", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"thread-2", "thread-3"}, ids)
}
