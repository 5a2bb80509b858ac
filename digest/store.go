package digest

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/propensive/gastronomy/hash"
)

var MemoryStoreSize = 128

// MemoryStore is a bounded in-memory content-addressed store: payloads are
// keyed by their digest under A and evicted least recently used first.
type MemoryStore[A hash.Algorithm] struct {
	data *lru.Cache[Digest[A], []byte]
}

// NewMemoryStore creates a store holding at most size payloads. Pass a value
// less than 1 to use the default size [MemoryStoreSize].
func NewMemoryStore[A hash.Algorithm](size int) (*MemoryStore[A], error) {
	if size <= 0 {
		size = MemoryStoreSize
	}
	cache, err := lru.New[Digest[A], []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &MemoryStore[A]{data: cache}, nil
}

// Put stores a copy of the payload and returns its digest.
func (s *MemoryStore[A]) Put(b []byte) Digest[A] {
	d := OfBytes[A](b)
	if !s.data.Contains(d) {
		cp := make([]byte, len(b))
		copy(cp, b)
		s.data.Add(d, cp)
	}
	return d
}

// Get retrieves the payload for a digest, if it is still resident.
func (s *MemoryStore[A]) Get(d Digest[A]) ([]byte, bool) {
	return s.data.Get(d)
}

func (s *MemoryStore[A]) Len() int {
	return s.data.Len()
}
