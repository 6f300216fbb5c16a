package dawg

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/domino14/tilegame/cache"
	"github.com/domino14/tilegame/config"
)

const (
	CacheKeyPrefix = "dawg:"
)

// CacheLoadFunc is the function that loads a dawg into a cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	lexiconName := strings.TrimPrefix(key, CacheKeyPrefix)
	return LoadFile(filepath.Join(cfg.LexiconPath, lexiconName+FileExtension))
}

// Get loads a named dawg from the cache or from a file.
func Get(cfg *config.Config, c *cache.Cache, name string) (*Dawg, error) {
	obj, err := c.Load(cfg, CacheKeyPrefix+name, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Dawg)
	if !ok {
		return nil, errors.New("could not read dawg from file")
	}
	return ret, nil
}
