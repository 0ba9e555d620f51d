package domain

import "context"

// BloomRepository is a probabilistic index of existing thread ids.
type BloomRepository interface {
	// Add puts id into the filter
	Add(ctx context.Context, id string) error

	// Exists reports whether id may exist.
	// true: maybe present, the store must be asked.
	// false: definitely absent.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd adds many ids in one round trip
	BulkAdd(ctx context.Context, ids []string) error
}

// ThreadIndexGuard tracks whether a negative bloom answer can be trusted.
type ThreadIndexGuard interface {
	// IndexSyncStarted marks the start of a full resync. The returned token
	// is handed back to IndexSynced once every stored id has been added.
	IndexSyncStarted() uint64

	// IndexSynced trusts the index again unless an Add failed after the
	// matching IndexSyncStarted.
	IndexSynced(token uint64)
}
