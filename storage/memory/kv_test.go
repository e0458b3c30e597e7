package memorystore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKVSetGetDel(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), 0))
	b, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", string(b))

	require.NoError(t, kv.Del(ctx, "k"))
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKVExpiry(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKVCopiesValue(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	v := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", v, 0))
	v[0] = 'x'

	b, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", string(b))
}
