package cache

import (
	"github.com/coocood/freecache"
)

var _ Cache = (*BoardCache)(nil)

const (
	boardCacheSize = 10 * 1024 * 1024
	// a day board changes as submissions come in, keep entries short-lived
	boardCacheExpireSeconds = 60
)

// BoardCache keeps freshly ranked day boards in process memory, so the
// hot "today" board is not recomputed on every request.
type BoardCache struct {
	mainCache *freecache.Cache
}

func NewBoardCache() *BoardCache {
	return &BoardCache{
		mainCache: freecache.NewCache(boardCacheSize),
	}
}

func (bc *BoardCache) Get(key string) ([]byte, bool) {
	val, err := bc.mainCache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (bc *BoardCache) Set(key string, value []byte) bool {
	return bc.mainCache.Set([]byte(key), value, boardCacheExpireSeconds) == nil
}

func (bc *BoardCache) Clear() {
	bc.mainCache.Clear()
}
