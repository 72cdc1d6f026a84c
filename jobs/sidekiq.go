package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	sidekiqQueuesKey   = "queues"
	sidekiqQueuePrefix = "queue:"
)

type (
	sidekiqEnqueuer struct {
		client *redis.Client
		queue  string
		now    func() time.Time
	}

	sidekiqPayload struct {
		Class      string  `json:"class"`
		Args       []any   `json:"args"`
		Queue      string  `json:"queue"`
		JID        string  `json:"jid"`
		Retry      bool    `json:"retry"`
		CreatedAt  float64 `json:"created_at"`
		EnqueuedAt float64 `json:"enqueued_at"`
	}
)

func newSidekiqEnqueuer(adapter appconfig.SidekiqQueue) (*sidekiqEnqueuer, error) {
	options, err := redis.ParseURL(adapter.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse sidekiq redis URL: %w", err)
	}
	return &sidekiqEnqueuer{
		client: redis.NewClient(options),
		queue:  adapter.Queue,
		now:    time.Now,
	}, nil
}

// Enqueue pushes the job where sidekiq workers poll for it.
func (e *sidekiqEnqueuer) Enqueue(ctx context.Context, job Job) (string, error) {
	payload := e.payload(job)
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("unable to encode job %s: %w", job.Class, err)
	}

	_, err = e.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, sidekiqQueuesKey, payload.Queue)
		pipe.LPush(ctx, sidekiqQueuePrefix+payload.Queue, data)
		return nil
	})
	if errors.Is(err, redis.ErrClosed) {
		return "", ErrQueueClosed
	}
	if err != nil {
		return "", fmt.Errorf("unable to push job %s to queue %s: %w", job.Class, payload.Queue, err)
	}

	return payload.JID, nil
}

func (e *sidekiqEnqueuer) payload(job Job) sidekiqPayload {
	queue := job.Queue
	if queue == "" {
		queue = e.queue
	}
	args := job.Args
	if args == nil {
		args = []any{}
	}
	now := float64(e.now().UnixNano()) / float64(time.Second)

	return sidekiqPayload{
		Class:      job.Class,
		Args:       args,
		Queue:      queue,
		JID:        newJID(),
		Retry:      true,
		CreatedAt:  now,
		EnqueuedAt: now,
	}
}

func (e *sidekiqEnqueuer) Close() error {
	return e.client.Close()
}
