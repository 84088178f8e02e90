package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// TypeImagesPurge removes uploads a deleted project left behind.
const TypeImagesPurge = "images:purge"

// PurgePayload is the task payload for TypeImagesPurge.
type PurgePayload struct {
	ProjectID string   `json:"projectId"`
	Keys      []string `json:"keys"`
}

func NewPurgeTask(projectID string, keys []string) (*asynq.Task, error) {
	b, err := json.Marshal(PurgePayload{ProjectID: projectID, Keys: keys})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImagesPurge, b, asynq.MaxRetry(5), asynq.Timeout(2*time.Minute)), nil
}

// Enqueuer publishes purge tasks to asynq.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueuePurge(ctx context.Context, projectID string, keys []string) error {
	task, err := NewPurgeTask(projectID, keys)
	if err != nil {
		return err
	}
	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeImagesPurge, err)
	}
	logger.L().Info("image purge enqueued", zap.String("project_id", projectID), zap.String("task_id", info.ID), zap.Int("keys", len(keys)))
	return nil
}

// ImageReferences answers whether a stored image is still in use.
type ImageReferences interface {
	ReferencesImage(ctx context.Context, key string) (bool, error)
}

// ObjectDeleter removes stored objects.
type ObjectDeleter interface {
	Delete(ctx context.Context, key string) error
}

// PurgeTaskHandler deletes the keys of a purge task that no remaining project
// references.
type PurgeTaskHandler struct {
	refs  ImageReferences
	store ObjectDeleter
}

func NewPurgeTaskHandler(refs ImageReferences, store ObjectDeleter) *PurgeTaskHandler {
	return &PurgeTaskHandler{refs: refs, store: store}
}

func (h *PurgeTaskHandler) HandlePurge(ctx context.Context, t *asynq.Task) error {
	var p PurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid purge task payload", zap.Error(err))
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.L().Info("handling purge task", zap.String("project_id", p.ProjectID), zap.Int("keys", len(p.Keys)))

	var firstErr error
	deleted := 0
	for _, key := range p.Keys {
		used, err := h.refs.ReferencesImage(ctx, key)
		if err != nil {
			logger.L().Error("reference check failed", zap.String("key", key), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if used {
			logger.L().Debug("image still referenced, keeping", zap.String("key", key))
			continue
		}
		if err := h.store.Delete(ctx, key); err != nil {
			logger.L().Error("delete image failed", zap.String("key", key), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		deleted++
	}

	logger.L().Info("purge task finished", zap.String("project_id", p.ProjectID), zap.Int("deleted", deleted))
	// returning an error retries the whole task; deletes are idempotent
	return firstErr
}
