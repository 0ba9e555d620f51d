package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// ThreadIndexer rebuilds the thread bloom index from the store.
type ThreadIndexer interface {
	InitThreadIndex(ctx context.Context) error
}

// SyncRecorder observes the outcome of every resync run.
type SyncRecorder interface {
	RecordIndexSync(err error)
}

const defaultSyncInterval = 10 * time.Minute

type threadIndexWorker struct {
	Indexer  ThreadIndexer
	Recorder SyncRecorder
	interval time.Duration
}

var _ domain.ThreadIndexWorker = (*threadIndexWorker)(nil)

// NewThreadIndexWorker falls back to defaultSyncInterval when interval isn't
// positive.
func NewThreadIndexWorker(idx ThreadIndexer, rec SyncRecorder, interval time.Duration) *threadIndexWorker {
	if interval <= 0 {
		logrus.Warnf("invalid thread index sync interval %s, using %s", interval, defaultSyncInterval)
		interval = defaultSyncInterval
	}
	return &threadIndexWorker{
		Indexer:  idx,
		Recorder: rec,
		interval: interval,
	}
}

// Start re-adds every thread id on each tick. Bloom bits are only ever set,
// so a run repairs ids whose Add failed and never removes anything.
func (w *threadIndexWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sync(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down ThreadIndexWorker")
			return
		}
	}
}

func (w *threadIndexWorker) sync(ctx context.Context) {
	err := w.Indexer.InitThreadIndex(ctx)
	if err != nil {
		logrus.Errorf("thread index resync failed: %v", err)
	}
	if w.Recorder != nil {
		w.Recorder.RecordIndexSync(err)
	}
}
