// Package segment recursively splits preprocessed page text along a fixed
// hierarchy of semantic separators (paragraph, header, line, sentence,
// clause, word) until every resulting segment fits a token budget, or the
// weakest separator has been tried.
//
// Grounded on the paragraph/header/sentence splitting style of
// other_examples' TicoDavid-RAGbox.co semantic_chunker.go, generalized to
// a full six-level hierarchy with token counts measured through a shared
// bpe.Engine rather than a word-count heuristic.
package segment

import (
	"strings"

	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
)

// Segment is a contiguous, offset-qualified slice of preprocessed page
// text produced by Split.
type Segment struct {
	Text          string
	StartOffset   int
	EndOffset     int
	SemanticLevel int
}

// Split recursively divides text into segments that each tokenize to at
// most targetTokens, using eng to measure token counts. A single
// indivisible "word" that still exceeds targetTokens after the weakest
// (space) separator is emitted as-is — a tolerated, documented invariant
// violation rather than a mid-token split.
func Split(text string, eng *bpe.Engine, targetTokens int) ([]Segment, error) {
	if text == "" {
		return nil, nil
	}

	working := []Segment{{Text: text, StartOffset: 0, EndOffset: len(text), SemanticLevel: 0}}

	for _, lvl := range levels {
		next := make([]Segment, 0, len(working))
		for _, seg := range working {
			count, err := eng.Count(seg.Text)
			if err != nil {
				return nil, err
			}
			if count <= targetTokens {
				next = append(next, seg)
				continue
			}

			pieces := splitAtLevel(seg, lvl)
			if len(pieces) <= 1 {
				// Failed to split at this level: carry forward unchanged.
				next = append(next, seg)
				continue
			}
			next = append(next, pieces...)
		}
		working = next

		if len(working) > maxSegments {
			return nil, &LimitError{Count: len(working), Limit: maxSegments}
		}
	}

	return working, nil
}

// splitAtLevel splits seg.Text on every match of lvl's separator
// alternation, discarding empty or whitespace-only fragments and excluding
// the separator bytes themselves from the produced segments — offsets
// therefore locate text but do not partition it byte-for-byte.
func splitAtLevel(seg Segment, lvl level) []Segment {
	matches := lvl.re.FindAllStringIndex(seg.Text, -1)
	if len(matches) == 0 {
		return nil
	}

	var out []Segment
	cursor := 0
	emit := func(start, end int) {
		piece := seg.Text[start:end]
		if strings.TrimSpace(piece) == "" {
			return
		}
		out = append(out, Segment{
			Text:          piece,
			StartOffset:   seg.StartOffset + start,
			EndOffset:     seg.StartOffset + end,
			SemanticLevel: lvl.index,
		})
	}

	for _, m := range matches {
		emit(cursor, m[0])
		cursor = m[1]
	}
	emit(cursor, len(seg.Text))

	return out
}
