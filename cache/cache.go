package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/domino14/tilegame/config"
)

// Cache holds large read-only objects that should be loaded at most once
// per process, such as dictionaries. It is not global; create one at
// startup and hand it to whatever needs to load things.
type Cache struct {
	mu      sync.RWMutex
	objects map[string]any
	group   singleflight.Group
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

func New() *Cache {
	return &Cache{objects: make(map[string]any)}
}

// Load returns the object stored under key, calling loadFunc to create it
// if needed. Concurrent callers for the same key share a single load.
func (c *Cache) Load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.mu.RLock()
	obj, ok := c.objects[key]
	c.mu.RUnlock()
	if ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}

	obj, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		existing, ok := c.objects[key]
		c.mu.RUnlock()
		if ok {
			return existing, nil
		}
		log.Debug().Str("key", key).Msg("loading into cache")
		loaded, err := loadFunc(cfg, key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.objects[key] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	return obj, err
}

// Len returns the number of objects held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.objects)
}
