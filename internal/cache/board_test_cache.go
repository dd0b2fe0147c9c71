package cache

import "sync"

var _ Cache = (*BoardTestCache)(nil)

type BoardTestCache struct {
	cache map[string][]byte
	mutex sync.Mutex
}

func NewBoardTestCache() *BoardTestCache {
	return &BoardTestCache{
		cache: make(map[string][]byte),
	}
}

func (btc *BoardTestCache) Get(key string) ([]byte, bool) {
	btc.mutex.Lock()
	defer btc.mutex.Unlock()

	if btc.cache == nil {
		panic("cache is nil")
	}
	if val, ok := btc.cache[key]; ok {
		return val, true
	}
	return nil, false
}

func (btc *BoardTestCache) Set(key string, value []byte) bool {
	btc.mutex.Lock()
	defer btc.mutex.Unlock()

	if btc.cache == nil {
		panic("cache is nil")
	}
	btc.cache[key] = value
	return true
}

func (btc *BoardTestCache) Clear() {
	btc.mutex.Lock()
	defer btc.mutex.Unlock()
	btc.cache = make(map[string][]byte)
}
