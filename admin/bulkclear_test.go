package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("tm-%03d", i)
	}
	return out
}

func TestClearInBatchesPartialFailure(t *testing.T) {
	// 120 records, batch size 50, second batch fails: exactly 50 deleted,
	// 70 remaining, and the error surfaces.
	calls := 0
	deleted, err := ClearInBatches(context.Background(), ids(120), 50, func(_ context.Context, batch []string) (int64, error) {
		calls++
		if calls == 2 {
			return 0, errors.New("write conflict")
		}
		return int64(len(batch)), nil
	})

	require.Error(t, err)
	assert.Equal(t, int64(50), deleted)
	assert.Equal(t, int64(70), int64(120)-deleted)
	assert.Equal(t, 2, calls, "the loop must stop at the failed batch")
}

func TestClearInBatchesFullRun(t *testing.T) {
	var batches [][]string
	deleted, err := ClearInBatchesCollect(t, ids(120), 50, &batches)

	require.NoError(t, err)
	assert.Equal(t, int64(120), deleted)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
	assert.Len(t, batches[2], 20)
}

// ClearInBatchesCollect runs ClearInBatches while recording each batch.
func ClearInBatchesCollect(t *testing.T, all []string, size int, out *[][]string) (int64, error) {
	t.Helper()
	return ClearInBatches(context.Background(), all, size, func(_ context.Context, batch []string) (int64, error) {
		copied := make([]string, len(batch))
		copy(copied, batch)
		*out = append(*out, copied)
		return int64(len(batch)), nil
	})
}

func TestClearInBatchesEmpty(t *testing.T) {
	deleted, err := ClearInBatches(context.Background(), nil, 50, func(_ context.Context, batch []string) (int64, error) {
		t.Fatal("deleter must not run for an empty set")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestClearInBatchesCountsPartialBatchWrites(t *testing.T) {
	// A batch that fails after deleting part of itself still counts what
	// it managed to remove.
	calls := 0
	deleted, err := ClearInBatches(context.Background(), ids(100), 50, func(_ context.Context, batch []string) (int64, error) {
		calls++
		if calls == 2 {
			return 30, errors.New("connection dropped mid-batch")
		}
		return int64(len(batch)), nil
	})

	require.Error(t, err)
	assert.Equal(t, int64(80), deleted)
}
