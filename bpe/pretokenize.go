package bpe

import (
	"sync"

	"github.com/dlclark/regexp2"
)

// splitPattern is the canonical o200k_base pre-tokenize pattern. It requires
// look-around support — specifically the negative look-ahead in
// `\s+(?!\S)` — which Go's stdlib regexp (RE2) cannot express, hence the
// dependency on dlclark/regexp2.
const splitPattern = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

// regexPool replicates a compiled *regexp2.Regexp across concurrent
// callers. regexp2's Regexp mutates internal match state across
// FindStringMatch/FindNextMatch calls and is documented as unsafe for
// concurrent reuse of one instance, so every concurrent pre-tokenize or
// special-token scan needs its own clone.
//
// Go does not expose a cheap, safe goroutine identity to hash into a
// fixed-size ring, so replicas are kept in a sync.Pool instead: callers
// take no lock of their own, and an idle replica is reused rather than
// recompiled. The number of replicas is not capped — it grows with the
// number of concurrent callers — and the pool may drop idle replicas at
// garbage collection, after which the next caller compiles a fresh one.
type regexPool struct {
	pattern string
	pool    sync.Pool
}

func newRegexPool(pattern string) *regexPool {
	p := &regexPool{pattern: pattern}
	p.pool.New = func() any {
		re := regexp2.MustCompile(p.pattern, regexp2.RE2)
		re.MatchTimeout = 0
		return re
	}
	return p
}

func (p *regexPool) get() *regexp2.Regexp {
	return p.pool.Get().(*regexp2.Regexp)
}

func (p *regexPool) put(re *regexp2.Regexp) {
	p.pool.Put(re)
}

// pretokenizePieces splits text into maximal matches of the pre-tokenize
// regex, in order. Each match's bytes are one piece fed to the byte-pair
// merge routine.
func (e *Engine) pretokenizePieces(text string) ([]string, error) {
	re := e.splitPool.get()
	defer e.splitPool.put(re)

	// regexp2 reports match positions in runes; byteAt maps each rune index
	// back to its byte offset so every piece keeps the input's exact bytes,
	// including bytes that are not valid UTF-8.
	byteAt := make([]int, 0, len(text)+1)
	for i := range text {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(text))

	var pieces []string
	match, err := re.FindStringMatch(text)
	if err != nil {
		return nil, NewEncodeError("pretokenize", text, err)
	}
	for match != nil {
		pieces = append(pieces, text[byteAt[match.Index]:byteAt[match.Index+match.Length]])
		match, err = re.FindNextMatch(match)
		if err != nil {
			return nil, NewEncodeError("pretokenize", text, err)
		}
	}
	return pieces, nil
}
