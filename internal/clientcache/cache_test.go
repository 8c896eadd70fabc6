package clientcache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T) *rpc.Client {
	t.Helper()
	srv := rpc.NewServer()
	t.Cleanup(srv.Stop)
	p := rpc.DialInProc(srv)
	t.Cleanup(p.Close)
	return p
}

func TestGetReturnsSameInstance(t *testing.T) {
	c := New()
	p := newProvider(t)

	a, err := c.Get(p)
	require.NoError(t, err)
	b, err := c.Get(p)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Len())
}

func TestDistinctProvidersGetDistinctClients(t *testing.T) {
	c := New()
	p1, p2 := newProvider(t), newProvider(t)

	a, err := c.Get(p1)
	require.NoError(t, err)
	b, err := c.Get(p2)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, c.Len())
}

func TestNilProvider(t *testing.T) {
	c := New()
	ec, err := c.Get(nil)
	assert.Nil(t, ec)
	assert.ErrorIs(t, err, ErrNilProvider)
	assert.Zero(t, c.Len())
}

func TestBuilderErrorPropagates(t *testing.T) {
	boom := errors.New("dial refused")
	c := New(WithBuilder(func(*rpc.Client) (*ethclient.Client, error) { return nil, boom }))

	_, err := c.Get(newProvider(t))
	assert.Equal(t, boom, err)
	assert.Zero(t, c.Len())
}

func TestConcurrentFirstAccessBuildsOnce(t *testing.T) {
	var built atomic.Int32
	c := New(WithBuilder(func(p *rpc.Client) (*ethclient.Client, error) {
		built.Add(1)
		return ethclient.NewClient(p), nil
	}))
	p := newProvider(t)

	const n = 32
	got := make([]*ethclient.Client, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ec, err := c.Get(p)
			assert.NoError(t, err)
			got[i] = ec
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, built.Load())
	for _, ec := range got {
		assert.Same(t, got[0], ec)
	}
}

func TestEvict(t *testing.T) {
	var lines []string
	c := New(WithLogf(func(f string, a ...any) { lines = append(lines, f) }))
	p := newProvider(t)

	a, err := c.Get(p)
	require.NoError(t, err)
	assert.True(t, c.Evict(p))
	assert.False(t, c.Evict(p))

	b, err := c.Get(p)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Len(t, lines, 3)
}

func TestClose(t *testing.T) {
	c := New()
	_, err := c.Get(newProvider(t))
	require.NoError(t, err)
	_, err = c.Get(newProvider(t))
	require.NoError(t, err)

	c.Close()
	assert.Zero(t, c.Len())
}
