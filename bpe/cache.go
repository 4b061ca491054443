package bpe

import (
	"container/list"
	"sync"
)

// pieceCache memoizes the ranks produced by mergeBytePair for a given
// piece. Pages routinely repeat short pieces (" the", ",", "\n\n", common
// identifiers), so caching the merge result avoids re-running the O(n^2)
// merge for the same bytes within and across pages sharing one Engine.
type pieceCache interface {
	get(piece string) ([]uint32, bool)
	put(piece string, ranks []uint32)
}

// lruPieceCache is a thread-safe, fixed-capacity LRU cache keyed by piece
// bytes, storing the merge result as []uint32 ranks.
type lruPieceCache struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

type pieceCacheEntry struct {
	piece string
	ranks []uint32
}

func newLRUPieceCache(capacity int) *lruPieceCache {
	return &lruPieceCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *lruPieceCache) get(piece string) ([]uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[piece]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*pieceCacheEntry).ranks, true
}

func (c *lruPieceCache) put(piece string, ranks []uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[piece]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*pieceCacheEntry).ranks = ranks
		return
	}

	elem := c.order.PushFront(&pieceCacheEntry{piece: piece, ranks: ranks})
	c.items[piece] = elem

	if c.capacity > 0 && c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*pieceCacheEntry).piece)
		}
	}
}
