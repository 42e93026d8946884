package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readlee/doc-extractor/internal/quality"
)

func poolFactory(ids *[]string) func(string) *Worker {
	return func(workerID string) *Worker {
		*ids = append(*ids, workerID)
		return New(Config{WorkerID: workerID, PollInterval: 10 * time.Millisecond},
			&stubJobStore{}, newStubDocStore(nil), &stubBlobStore{},
			&stubEngine{name: "textlayer"}, &stubEngine{name: "tesseract"},
			quality.NewEvaluator(quality.DefaultConfig(), nil), nil)
	}
}

func TestNewPool_DerivesWorkerIDs(t *testing.T) {
	t.Run("single worker keeps the base id", func(t *testing.T) {
		var ids []string
		NewPool(1, "host-1", poolFactory(&ids), nil)
		assert.Equal(t, []string{"host-1"}, ids)
	})

	t.Run("multiple workers get numbered ids", func(t *testing.T) {
		var ids []string
		NewPool(3, "host-1", poolFactory(&ids), nil)
		assert.Equal(t, []string{"host-1#1", "host-1#2", "host-1#3"}, ids)
	})

	t.Run("non-positive count is clamped to one", func(t *testing.T) {
		var ids []string
		NewPool(0, "host-1", poolFactory(&ids), nil)
		require.Len(t, ids, 1)
	})
}

func TestPool_StartAndDrain(t *testing.T) {
	var ids []string
	p := NewPool(2, "host-1", poolFactory(&ids), nil)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	p.Wait(waitCtx)
	assert.NoError(t, waitCtx.Err(), "pool did not drain before the deadline")
}
