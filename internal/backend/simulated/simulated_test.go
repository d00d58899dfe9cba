package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itasks/internal/task"
)

func TestBackend_CreateTaskWaitsForDelay(t *testing.T) {
	b := New(30 * time.Millisecond)

	start := time.Now()
	got, err := b.CreateTask(context.Background(), task.Draft{Title: "Buy milk", Description: "2 liters"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2 liters", got.Description)
	assert.NotEmpty(t, got.ID)
}

func TestBackend_IDsAreUniqueAndOrdered(t *testing.T) {
	b := New(0)
	ctx := context.Background()

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 500; i++ {
		got, err := b.CreateTask(ctx, task.Draft{Title: "same", Description: "same"})
		require.NoError(t, err)
		require.False(t, seen[got.ID], "duplicate id %s", got.ID)
		seen[got.ID] = true

		parsed, err := uuid.Parse(got.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		assert.Greater(t, got.ID, prev)
		prev = got.ID
	}
}

func TestBackend_CreateTaskCancelled(t *testing.T) {
	b := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.CreateTask(ctx, task.Draft{Title: "T", Description: "D"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackend_Defaults(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, DefaultDelay)
	assert.Equal(t, time.Duration(0), New(-time.Second).Delay())
	assert.NoError(t, New(0).DeleteTask(context.Background(), "anything"))
}
