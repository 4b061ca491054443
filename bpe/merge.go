package bpe

import "math"

// rankMax marks a boundary pair with no vocabulary entry — an "infinite"
// rank that never wins the minimum-rank scan below.
const rankMax = math.MaxUint32

// boundary is one candidate merge boundary within a piece: the byte offset
// it starts at, and the vocabulary rank of the two-boundary span starting
// there (rankMax if that span has no vocabulary entry).
type boundary struct {
	pos  int
	rank uint32
}

// mergeBytePair runs the rank-ordered byte-pair merge over a single
// pre-tokenize piece and appends the resulting ranks to dst.
//
// Grounded directly on the tri-boundary recompute shape used by
// other_examples' j178-tiktoken-go codec.bpe: a parts/boundary array keyed
// by byte offset, a running scan for the minimum rank below rankMax, and an
// in-place compaction on merge. Two sentinel boundaries keep index math for
// the final emission pass in range.
func (e *Engine) mergeBytePair(piece []byte, dst []uint32) ([]uint32, error) {
	if len(piece) == 1 {
		rank, ok := e.vocab.Rank(piece)
		if !ok {
			return nil, NewEncodeError("merge", string(piece), ErrRankNotFound)
		}
		return append(dst, rank), nil
	}

	parts := make([]boundary, len(piece)+1)
	for i := range parts {
		parts[i] = boundary{pos: i, rank: rankMax}
	}

	rankAt := func(i, skip int) uint32 {
		if i+skip+2 >= len(parts) {
			return rankMax
		}
		start, end := parts[i].pos, parts[i+skip+2].pos
		if r, ok := e.vocab.Rank(piece[start:end]); ok {
			return r
		}
		return rankMax
	}

	for i := 0; i < len(parts)-2; i++ {
		parts[i].rank = rankAt(i, 0)
	}

	for len(parts) > 1 {
		minRank := uint32(rankMax)
		minIndex := -1
		for i := 0; i < len(parts)-1; i++ {
			if parts[i].rank < minRank {
				minRank = parts[i].rank
				minIndex = i
			}
		}
		if minIndex < 0 {
			break
		}

		parts[minIndex].rank = rankAt(minIndex, 1)
		if minIndex > 0 {
			parts[minIndex-1].rank = rankAt(minIndex-1, 1)
		}
		parts = append(parts[:minIndex+1], parts[minIndex+2:]...)
	}

	for i := 0; i < len(parts)-1; i++ {
		span := piece[parts[i].pos:parts[i+1].pos]
		rank, ok := e.vocab.Rank(span)
		if !ok {
			return nil, NewEncodeError("merge", string(span), ErrRankNotFound)
		}
		dst = append(dst, rank)
	}
	return dst, nil
}
