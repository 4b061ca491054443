// Package bpe implements the byte-pair-encoding engine compatible with the
// o200k_base vocabulary family: regexp2-driven pre-tokenization, the
// tri-boundary rank-array merge, and decode/encode-with-specials.
//
// An *Engine is built once from a *vocab.Vocabulary and is safe for
// unlimited concurrent use: the vocabulary is shared read-only, and the
// regexp2 match engines that cannot be shared across concurrent callers are
// replicated through a sync.Pool (see pretokenize.go).
package bpe

import (
	"strings"
	"unicode/utf8"

	"github.com/blenbot/RustyChunker-for-gpt4/vocab"
)

// defaultCacheSize bounds the per-piece merge-result cache. 0 disables
// caching entirely.
const defaultCacheSize = 8192

// Engine is the byte-pair-encoding engine: pre-tokenize, merge, decode.
type Engine struct {
	vocab *vocab.Vocabulary

	splitPool   *regexPool
	specialPool *regexPool

	specialLabels []string

	cache pieceCache
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	cacheSize int
}

// WithCacheSize overrides the per-piece merge-result cache capacity. Zero
// disables caching.
func WithCacheSize(n int) Option {
	return func(c *engineConfig) {
		c.cacheSize = n
	}
}

// New builds an Engine over v.
func New(v *vocab.Vocabulary, opts ...Option) *Engine {
	cfg := engineConfig{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := v.SpecialLabels()

	e := &Engine{
		vocab:         v,
		splitPool:     newRegexPool(splitPattern),
		specialPool:   newRegexPool(buildSpecialPattern(labels)),
		specialLabels: labels,
	}
	if cfg.cacheSize > 0 {
		e.cache = newLRUPieceCache(cfg.cacheSize)
	}
	return e
}

// EncodeOrdinary converts text into a sequence of token ranks, ignoring any
// special-token labels that may appear literally in the text (they are
// tokenized as ordinary bytes). Deterministic: the same text always
// produces the same rank sequence, from any goroutine.
func (e *Engine) EncodeOrdinary(text string) ([]uint32, error) {
	if text == "" {
		return nil, nil
	}

	pieces, err := e.pretokenizePieces(text)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, 0, len(text)/3+1)
	for _, piece := range pieces {
		if rank, ok := e.vocab.Rank([]byte(piece)); ok {
			out = append(out, rank)
			continue
		}
		if e.cache != nil {
			if ranks, ok := e.cache.get(piece); ok {
				out = append(out, ranks...)
				continue
			}
		}

		before := len(out)
		out, err = e.mergeBytePair([]byte(piece), out)
		if err != nil {
			return nil, err
		}
		if e.cache != nil {
			merged := append([]uint32(nil), out[before:]...)
			e.cache.put(piece, merged)
		}
	}
	return out, nil
}

// Count returns len(EncodeOrdinary(text)) without allocating the
// intermediate rank slice beyond what EncodeOrdinary itself needs.
func (e *Engine) Count(text string) (int, error) {
	ranks, err := e.EncodeOrdinary(text)
	if err != nil {
		return 0, err
	}
	return len(ranks), nil
}

// Decode concatenates the byte sequence for each rank — checking the
// regular vocabulary first, then the special-token table — and interprets
// the result as UTF-8.
func (e *Engine) Decode(ranks []uint32) (string, error) {
	var b strings.Builder
	for _, rank := range ranks {
		if bytes, ok := e.vocab.Bytes(rank); ok {
			b.WriteString(bytes)
			continue
		}
		if label, ok := e.vocab.SpecialBytes(rank); ok {
			b.WriteString(label)
			continue
		}
		return "", NewDecodeError("decode", rank, ErrRankNotFound)
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return "", NewDecodeError("decode", 0, ErrInvalidUTF8)
	}
	return out, nil
}

// AllowAll returns an allow-list containing every special-token label this
// Engine's vocabulary defines, for use with EncodeWithSpecials.
func (e *Engine) AllowAll() map[string]bool {
	return e.allowAll()
}
