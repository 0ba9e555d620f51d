package domain

import "context"

// ThreadIndexWorker keeps the thread bloom index in step with the store.
type ThreadIndexWorker interface {
	Start(ctx context.Context)
}
