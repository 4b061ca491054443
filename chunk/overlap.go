package chunk

import (
	"strings"

	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
)

// Overlap assigns dense chunk_id values starting at 0 and prepends, to
// every chunk but the first, the decoded tail of the *previous* chunk's
// final token sequence — not its pre-overlap merge text. This lets overlap
// cascade: once chunk k carries a prefix from chunk k−1, chunk k+1's
// overlap is drawn from text that already includes it. Callers must not
// memoize the pre-overlap tokenization of a chunk and reuse it here.
func Overlap(chunks []SemanticChunk, eng *bpe.Engine, overlapTokens int) ([]ChunkRecord, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	records := make([]ChunkRecord, 0, len(chunks))
	var prevRanks []uint32

	for i, c := range chunks {
		text := c.Text

		if i > 0 && overlapTokens > 0 && len(prevRanks) > 0 {
			n := overlapTokens
			if n > len(prevRanks) {
				n = len(prevRanks)
			}
			overlapText, err := eng.Decode(prevRanks[len(prevRanks)-n:])
			if err != nil {
				return nil, NewChunkingError("overlap", err)
			}

			trimmedOverlap := strings.TrimSpace(overlapText)
			trimmedChunk := strings.TrimSpace(text)
			switch {
			case trimmedOverlap == "":
				text = trimmedChunk
			case trimmedChunk == "":
				text = trimmedOverlap
			default:
				text = trimmedOverlap + " " + trimmedChunk
			}
		}

		ranks, err := eng.EncodeOrdinary(text)
		if err != nil {
			return nil, NewChunkingError("overlap", err)
		}

		records = append(records, ChunkRecord{
			ChunkID:    i,
			Text:       text,
			TokenCount: len(ranks),
		})
		prevRanks = ranks
	}

	return records, nil
}
