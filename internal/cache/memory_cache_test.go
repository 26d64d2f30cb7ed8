package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, c.SetJSON(ctx, "page:home", payload{Name: "Jane"}, time.Minute))

	var got payload
	found, err := c.GetJSON(ctx, "page:home", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Jane", got.Name)
}

func TestMemoryCache_MissIsNotAnError(t *testing.T) {
	c := NewMemoryCache()

	var got map[string]any
	found, err := c.GetJSON(context.Background(), "page:missing", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_DelRemovesKeys(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "page:home", "a", time.Minute))
	require.NoError(t, c.SetJSON(ctx, "page:projects", "b", time.Minute))
	require.NoError(t, c.Del(ctx, "page:home", "page:projects"))

	var s string
	found, err := c.GetJSON(ctx, "page:home", &s)
	require.NoError(t, err)
	assert.False(t, found)
}
