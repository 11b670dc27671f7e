package memory

import (
	"testing"
	"time"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheExpiry(t *testing.T) {
	c := NewCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set("car:1", []byte("a"), time.Minute))
	require.NoError(t, c.Set("car:2", []byte("b"), 0))

	got, err := c.Get("car:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)

	now = now.Add(time.Minute)
	_, err = c.Get("car:1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	got, err = c.Get("car:2")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)

	require.NoError(t, c.Delete("car:2"))
	_, err = c.Get("car:2")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCacheCopiesValues(t *testing.T) {
	c := NewCache()
	value := []byte("abc")
	require.NoError(t, c.Set("k", value, 0))
	value[0] = 'x'

	got, err := c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
