// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mirrorlake/docsync/internal/adapter"
	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/models"
)

// replicator orchestrates push and pull cycles for remote endpoints. It owns
// the per-endpoint mutual exclusion the checkpoint managers require: at most
// one push or pull cycle runs per endpoint hash at any time.
type replicator struct {
	push      PushCheckpoints
	pull      PullCheckpoints
	applier   PulledApplier
	adapter   adapter.EndpointAdapter
	batchSize int

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	logger *logger.Logger
}

func NewReplicator(
	push PushCheckpoints,
	pull PullCheckpoints,
	applier PulledApplier,
	endpointAdapter adapter.EndpointAdapter,
	batchSize int,
	log *logger.Logger,
) ReplicationService {
	return &replicator{
		push:      push,
		pull:      pull,
		applier:   applier,
		adapter:   endpointAdapter,
		batchSize: batchSize,
		locks:     make(map[string]*sync.Mutex),
		logger:    log,
	}
}

// PushOnce implements ReplicationService.
func (r *replicator) PushOnce(ctx context.Context, endpoint models.RemoteEndpoint) (int, error) {
	hash := endpoint.Hash()
	lock := r.endpointLock(hash)
	lock.Lock()
	defer lock.Unlock()

	return r.pushLocked(ctx, hash)
}

// PullOnce implements ReplicationService.
func (r *replicator) PullOnce(ctx context.Context, endpoint models.RemoteEndpoint) (int, error) {
	hash := endpoint.Hash()
	lock := r.endpointLock(hash)
	lock.Lock()
	defer lock.Unlock()

	return r.pullLocked(ctx, hash)
}

// SyncOnce implements ReplicationService. It pulls before pushing so a
// document updated on both sides is filtered rather than bounced, and
// retries the push once after a conflict, since a conflict means the remote
// holds state this replica has not pulled yet.
func (r *replicator) SyncOnce(ctx context.Context, endpoint models.RemoteEndpoint) error {
	log := logger.FromContext(ctx)
	hash := endpoint.Hash()
	lock := r.endpointLock(hash)
	lock.Lock()
	defer lock.Unlock()

	if _, err := r.pullLocked(ctx, hash); err != nil {
		return fmt.Errorf("pull cycle: %w", err)
	}

	_, err := r.pushLocked(ctx, hash)
	if errors.Is(err, adapter.ErrConflict) {
		log.Info().
			Str("func", "replicator.SyncOnce").
			Str("endpoint_hash", hash).
			Msg("push conflicted, pulling remote state and retrying")

		if _, pullErr := r.pullLocked(ctx, hash); pullErr != nil {
			return fmt.Errorf("pull after push conflict: %w", pullErr)
		}
		_, err = r.pushLocked(ctx, hash)
	}
	if err != nil {
		return fmt.Errorf("push cycle: %w", err)
	}

	return nil
}

func (r *replicator) pushLocked(ctx context.Context, hash string) (int, error) {
	log := logger.FromContext(ctx)

	committed, err := r.push.LastSequence(ctx, hash)
	if err != nil {
		return 0, err
	}

	batch, err := r.push.ChangesSinceLastPush(ctx, hash)
	if err != nil {
		return 0, err
	}

	if !batch.Empty() {
		if err := r.adapter.PushBatch(ctx, batch); err != nil {
			return 0, err
		}
	}

	// An empty batch can still move the checkpoint: the selector may have
	// scanned past a run of non-pushable changes.
	if batch.LastSequence != committed {
		if _, err := r.push.SetLastSequence(ctx, hash, batch.LastSequence); err != nil {
			return 0, err
		}
	}

	if !batch.Empty() {
		log.Debug().
			Str("func", "replicator.PushOnce").
			Str("endpoint_hash", hash).
			Int("documents", len(batch.Results)).
			Int64("last_sequence", batch.LastSequence).
			Msg("pushed batch")
	}

	return len(batch.Results), nil
}

func (r *replicator) pullLocked(ctx context.Context, hash string) (int, error) {
	log := logger.FromContext(ctx)

	last, err := r.pull.LastDocument(ctx, hash)
	if err != nil {
		return 0, err
	}

	docs, checkpoint, err := r.adapter.PullSince(ctx, last, r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}

	// Apply before committing the checkpoint: the pulled ledger must observe
	// these revisions before the next push filter runs.
	if err := r.applier.ApplyPulled(ctx, hash, docs); err != nil {
		return 0, err
	}

	if len(checkpoint) > 0 {
		if _, err := r.pull.SetLastDocument(ctx, hash, checkpoint); err != nil {
			return 0, err
		}
	}

	log.Debug().
		Str("func", "replicator.PullOnce").
		Str("endpoint_hash", hash).
		Int("documents", len(docs)).
		Msg("applied pulled batch")

	return len(docs), nil
}

func (r *replicator) endpointLock(hash string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[hash]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[hash] = lock
	}

	return lock
}
