package bpe

import (
	"regexp"
	"strings"
)

// buildSpecialPattern compiles an alternation of every special-token label,
// longest first so that, e.g., "<|endofprompt|>" is never shadowed by a
// shorter label that happens to be a prefix of it.
func buildSpecialPattern(labels []string) string {
	sorted := append([]string(nil), labels...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(parts, "|")
}

// EncodeWithSpecials tokenizes text, treating any special-token label in
// allowed as a literal special token rather than ordinary text. A special
// match that is not in allowed is treated as ordinary text: the scan
// resumes one byte past the match's start so the (disallowed) label is
// still tokenized as plain bytes afterward.
func (e *Engine) EncodeWithSpecials(text string, allowed map[string]bool) ([]uint32, error) {
	if len(e.specialLabels) == 0 {
		return e.EncodeOrdinary(text)
	}

	re := e.specialPool.get()
	defer e.specialPool.put(re)

	// regexp2 reports match positions in runes; byteAt maps them back to
	// byte offsets into text.
	byteAt := make([]int, 0, len(text)+1)
	for i := range text {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(text))

	var out []uint32
	pos := 0        // start of the text not yet tokenized
	searchFrom := 0 // where the next special-token search begins
	for pos <= len(text) {
		m, err := re.FindStringMatchStartingAt(text, searchFrom)
		if err != nil {
			return nil, NewEncodeError("encode-with-specials", text, err)
		}
		if m == nil {
			ranks, err := e.EncodeOrdinary(text[pos:])
			if err != nil {
				return nil, err
			}
			out = append(out, ranks...)
			break
		}

		label := m.String()
		start := byteAt[m.Index]
		end := byteAt[m.Index+m.Length]

		if !allowed[label] {
			// Not allowed here: resume the search one byte past the match's
			// start so we don't loop forever re-matching the same disallowed
			// token; the text from pos onward stays pending as ordinary text.
			searchFrom = start + 1
			continue
		}

		ranks, err := e.EncodeOrdinary(text[pos:start])
		if err != nil {
			return nil, err
		}
		out = append(out, ranks...)

		rank, ok := e.vocab.SpecialRank(label)
		if !ok {
			return nil, NewEncodeError("encode-with-specials", label, ErrRankNotFound)
		}
		out = append(out, rank)

		pos = end
		searchFrom = end
	}
	return out, nil
}

// allowAll builds an allow-list containing every special-token label the
// engine knows about, a convenience for callers that want every special
// token recognized.
func (e *Engine) allowAll() map[string]bool {
	allowed := make(map[string]bool, len(e.specialLabels))
	for _, l := range e.specialLabels {
		allowed[l] = true
	}
	return allowed
}
