// Package clientcache keeps one *ethclient.Client per *rpc.Client.
//
// Entries are keyed by provider pointer identity, never by value. Go has no
// weak-keyed map whose value may reference its key, so entries live until
// Evict or Close is called.
package clientcache

import (
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

var ErrNilProvider = errors.New("nil provider")

// Builder constructs the client bound to a provider.
type Builder func(p *rpc.Client) (*ethclient.Client, error)

type Option func(*Cache)

func WithBuilder(b Builder) Option { return func(c *Cache) { c.build = b } }

func WithLogf(f func(string, ...any)) Option { return func(c *Cache) { c.logf = f } }

type Cache struct {
	mu      sync.Mutex
	build   Builder
	logf    func(string, ...any)
	clients map[*rpc.Client]*ethclient.Client
}

func New(opts ...Option) *Cache {
	c := &Cache{build: defaultBuilder, clients: make(map[*rpc.Client]*ethclient.Client)}
	for _, o := range opts {
		o(c)
	}
	return c
}

func defaultBuilder(p *rpc.Client) (*ethclient.Client, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	return ethclient.NewClient(p), nil
}

func (c *Cache) log(format string, a ...any) {
	if c.logf != nil {
		c.logf(format, a...)
	}
}

// Get returns the cached client for p, building it on first use.
// Builder errors are returned as is and nothing is stored.
func (c *Cache) Get(p *rpc.Client) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ec, ok := c.clients[p]; ok {
		return ec, nil
	}
	ec, err := c.build(p)
	if err != nil {
		return nil, err
	}
	c.clients[p] = ec
	c.log("clientcache: new client for provider %p (size=%d)", p, len(c.clients))
	return ec, nil
}

// Evict forgets p. The provider itself is left open.
func (c *Cache) Evict(p *rpc.Client) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.clients[p]; !ok {
		return false
	}
	delete(c.clients, p)
	c.log("clientcache: evicted provider %p", p)
	return true
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

// Close drops every entry and closes the providers.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for p := range c.clients {
		if p != nil {
			p.Close()
		}
		delete(c.clients, p)
	}
}

// Default is the process-wide cache.
var Default = New()

func Get(p *rpc.Client) (*ethclient.Client, error) { return Default.Get(p) }
