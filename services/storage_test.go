package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())

	type payload struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}
	in := payload{Name: "x", Count: 3, Tags: []string{"a", "b"}}
	store.Save("k", in)

	var out payload
	require.True(t, store.Load("k", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())

	var out string
	assert.False(t, store.Load("absent", &out))
	_, ok := store.LoadRaw("absent")
	assert.False(t, ok)
}

func TestMemoryStoreCorruptBlobFallsBackToDefault(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	store.Put("bad", []byte("{not json"))

	var out map[string]any
	assert.False(t, store.Load("bad", &out), "corrupt blob must read as absent, never panic")
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())

	store.Save("k", 1)
	store.Save("k", 2)

	var out int
	require.True(t, store.Load("k", &out))
	assert.Equal(t, 2, out)
}
