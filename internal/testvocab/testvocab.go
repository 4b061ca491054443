// Package testvocab builds small, deterministic BPE vocabularies for tests.
// This repository does not ship the real ~200,000-entry o200k_base table
// (it is not distributed with the source), so every package that exercises
// bpe.Engine end-to-end trains a miniature vocabulary from a fixed corpus
// of the phrases its own tests use, following the same greedy byte-pair
// merge training loop used by dictionary-building tools in this space
// (compare ha1tch-unz's cmd/mkdict trainBPE).
package testvocab

import (
	"sort"

	"github.com/blenbot/RustyChunker-for-gpt4/vocab"
)

type pair [2]string

// Build trains a vocabulary over corpus: it starts from the 256
// single-byte tokens (ranks 0-255, guaranteeing every byte is encodable)
// and performs up to numMerges rounds of "merge the most frequent adjacent
// symbol pair across the whole corpus", the textbook BPE training loop,
// assigning each newly merged symbol the next free rank in order. Training
// stops early once no pair repeats.
func Build(corpus []string, numMerges int) *vocab.Vocabulary {
	forward := make(map[string]uint32, 256+numMerges)
	for b := 0; b < 256; b++ {
		forward[string([]byte{byte(b)})] = uint32(b)
	}
	nextRank := uint32(256)

	seqs := make([][]string, len(corpus))
	for i, piece := range corpus {
		bs := []byte(piece)
		sym := make([]string, len(bs))
		for j, b := range bs {
			sym[j] = string([]byte{b})
		}
		seqs[i] = sym
	}

	for m := 0; m < numMerges; m++ {
		counts := make(map[pair]int)
		for _, seq := range seqs {
			for i := 0; i+1 < len(seq); i++ {
				counts[pair{seq[i], seq[i+1]}]++
			}
		}
		if len(counts) == 0 {
			break
		}

		keys := make([]pair, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i][0] != keys[j][0] {
				return keys[i][0] < keys[j][0]
			}
			return keys[i][1] < keys[j][1]
		})

		best := keys[0]
		bestCount := counts[best]
		for _, k := range keys[1:] {
			if counts[k] > bestCount {
				best = k
				bestCount = counts[k]
			}
		}
		if bestCount < 2 {
			break
		}

		merged := best[0] + best[1]
		if _, exists := forward[merged]; !exists {
			forward[merged] = nextRank
			nextRank++
		}

		for si, seq := range seqs {
			out := make([]string, 0, len(seq))
			i := 0
			for i < len(seq) {
				if i+1 < len(seq) && seq[i] == best[0] && seq[i+1] == best[1] {
					out = append(out, merged)
					i += 2
				} else {
					out = append(out, seq[i])
					i++
				}
			}
			seqs[si] = out
		}
	}

	return vocab.New(forward)
}
