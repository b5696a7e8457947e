package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aulaview/aulaview-backend/internal/model"
)

func sampleLessons() []model.Lesson {
	return []model.Lesson{{
		StartTime:     time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC),
		LessonName:    "Analisi I",
		Instructor:    "Maria Rossi",
		ClassroomName: "A-1-1",
	}}
}

func TestMemoryPutGet(t *testing.T) {
	store := NewMemory(time.Minute)
	ctx := context.Background()

	lessons := sampleLessons()
	store.Put(ctx, "lessons:c1:2024-01-10", lessons, time.Minute)

	got, ok := store.Get(ctx, "lessons:c1:2024-01-10")
	require.True(t, ok)
	require.Equal(t, lessons, got)
}

func TestMemoryMissingKey(t *testing.T) {
	store := NewMemory(time.Minute)

	_, ok := store.Get(context.Background(), "lessons:absent:2024-01-10")
	require.False(t, ok)
}

func TestMemoryExpiredEntryBehavesAsMissing(t *testing.T) {
	store := NewMemory(time.Minute)
	ctx := context.Background()

	store.Put(ctx, "k", sampleLessons(), 30*time.Millisecond)

	_, ok := store.Get(ctx, "k")
	require.True(t, ok, "entry is served before expiry")

	time.Sleep(60 * time.Millisecond)

	_, ok = store.Get(ctx, "k")
	require.False(t, ok, "expired entry must look exactly like a missing key")
}

func TestMemoryEmptyListIsCacheable(t *testing.T) {
	store := NewMemory(time.Minute)
	ctx := context.Background()

	store.Put(ctx, "k", []model.Lesson{}, time.Minute)

	got, ok := store.Get(ctx, "k")
	require.True(t, ok, "an empty day is a valid cached payload, not a miss")
	require.Empty(t, got)
}

func TestMemoryNonPositiveTTLUsesDefault(t *testing.T) {
	store := NewMemory(30 * time.Millisecond)
	ctx := context.Background()

	store.Put(ctx, "k", sampleLessons(), 0)
	time.Sleep(60 * time.Millisecond)

	_, ok := store.Get(ctx, "k")
	require.False(t, ok)
}
