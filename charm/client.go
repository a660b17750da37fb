// ABOUTME: KV vault client over charm kv with optional cloud sync
// ABOUTME: One process-wide client; tests swap in a badger-only backend
package charm

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

// Client is the storage handle the store writes collections through. All
// access goes through the mutex; when testClient is set, calls are routed to
// the badger-only test backend instead of charm kv.
type Client struct {
	kv         *kv.KV
	config     *Config
	mu         sync.RWMutex
	testClient *testClient
}

// InitClient opens the process-wide vault. Safe to call more than once; the
// first call wins and later calls return its result.
func InitClient() error {
	clientOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			clientErr = fmt.Errorf("failed to load config: %w", err)
			return
		}

		// charm kv reads the server address from the environment
		_ = os.Setenv("CHARM_HOST", cfg.Host)

		db, err := kv.OpenWithDefaults(AppName)
		if err != nil {
			clientErr = fmt.Errorf("failed to open kv vault: %w", err)
			return
		}

		globalClient = &Client{kv: db, config: cfg}

		// Pull remote changes before the store loads collections
		if cfg.AutoSync {
			_ = db.Sync()
		}
	})
	return clientErr
}

// GetClient returns the process-wide client, opening the vault if needed.
func GetClient() (*Client, error) {
	if err := InitClient(); err != nil {
		return nil, err
	}
	if globalClient == nil {
		return nil, fmt.Errorf("vault not initialized")
	}
	return globalClient, nil
}

// NewClient opens a standalone vault handle outside the singleton. Mostly
// useful for one-off tools that must not disturb the global state.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	_ = os.Setenv("CHARM_HOST", cfg.Host)

	db, err := kv.OpenWithDefaults(AppName)
	if err != nil {
		return nil, fmt.Errorf("failed to open kv vault: %w", err)
	}

	c := &Client{kv: db, config: cfg}
	if cfg.AutoSync {
		_ = db.Sync()
	}
	return c, nil
}

// Close releases the vault. charm/kv has no explicit close; the underlying
// badger store is flushed when the process exits.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return nil
}

// Config returns the active vault configuration.
func (c *Client) Config() *Config {
	if c.testClient != nil {
		return c.testClient.Config()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// ID returns this device's charm account id.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// IsConnected reports whether the charm server is reachable, which is the
// case exactly when an account id can be resolved.
func (c *Client) IsConnected() bool {
	if c.testClient != nil {
		return true
	}
	_, err := c.ID()
	return err == nil
}

// Sync pushes and pulls pending changes immediately.
func (c *Client) Sync() error {
	if c.testClient != nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Sync()
}

// Get reads one value.
func (c *Client) Get(key []byte) ([]byte, error) {
	if c.testClient != nil {
		return c.testClient.Get(key)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Get(key)
}

// Set writes one value, syncing afterwards when auto-sync is on. The sync
// happens under the lock so a concurrent write cannot interleave.
func (c *Client) Set(key, value []byte) error {
	if c.testClient != nil {
		return c.testClient.Set(key, value)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set(key, value); err != nil {
		return err
	}
	if c.config.AutoSync {
		_ = c.kv.Sync()
	}
	return nil
}

// Delete removes one key, syncing afterwards when auto-sync is on.
func (c *Client) Delete(key []byte) error {
	if c.testClient != nil {
		return c.testClient.Delete(key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Delete(key); err != nil {
		return err
	}
	if c.config.AutoSync {
		_ = c.kv.Sync()
	}
	return nil
}

// Keys lists every key in the vault.
func (c *Client) Keys() ([][]byte, error) {
	if c.testClient != nil {
		return c.testClient.Keys()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Keys()
}

// KeysWithPrefix lists keys sharing a prefix.
func (c *Client) KeysWithPrefix(prefix []byte) ([][]byte, error) {
	allKeys, err := c.Keys()
	if err != nil {
		return nil, err
	}

	var matched [][]byte
	for _, k := range allKeys {
		if len(k) >= len(prefix) && string(k[:len(prefix)]) == string(prefix) {
			matched = append(matched, k)
		}
	}
	return matched, nil
}

// Reset drops every key in the vault. The kv wipe command is the only caller.
func (c *Client) Reset() error {
	if c.testClient != nil {
		return c.testClient.Reset()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}
