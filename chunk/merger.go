package chunk

import (
	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
	"github.com/blenbot/RustyChunker-for-gpt4/segment"
)

// Merge performs a single greedy linear pass over segments, concatenating
// adjacent segments (joined by exactly one space) into a growing buffer
// until the candidate would exceed targetTokens, at which point the buffer
// is emitted as a SemanticChunk and a new one starts with the segment that
// overran it. The strategy is deliberately greedy: a single segment that
// alone exceeds targetTokens is still admitted as the seed of its own
// chunk rather than rejected.
func Merge(segments []segment.Segment, eng *bpe.Engine, targetTokens int) ([]SemanticChunk, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	var chunks []SemanticChunk
	var buffer string
	var members []int
	var bufferCount int
	start, end := 0, 0

	flush := func() {
		if buffer == "" {
			return
		}
		chunks = append(chunks, SemanticChunk{
			Text:        buffer,
			TokenCount:  bufferCount,
			Members:     members,
			StartOffset: start,
			EndOffset:   end,
		})
		buffer = ""
		members = nil
	}

	for i, seg := range segments {
		candidate := seg.Text
		if buffer != "" {
			candidate = buffer + " " + seg.Text
		}

		count, err := eng.Count(candidate)
		if err != nil {
			return nil, NewChunkingError("merge", err)
		}

		if count > targetTokens && buffer != "" {
			flush()
			candidate = seg.Text
			start = seg.StartOffset
			count, err = eng.Count(candidate)
			if err != nil {
				return nil, NewChunkingError("merge", err)
			}
		} else if buffer == "" {
			start = seg.StartOffset
		}

		buffer = candidate
		bufferCount = count
		members = append(members, i)
		end = seg.EndOffset
	}
	flush()

	return chunks, nil
}
