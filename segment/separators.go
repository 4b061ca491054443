package segment

import "regexp"

// level is one rung of the semantic separator hierarchy: a set of patterns
// of equal strength, tried together as a single alternation so that, e.g.,
// "\n### " is never shadowed by the weaker "\n# " pattern at the same
// level. None of these patterns require look-around, so the stdlib regexp
// package (unlike bpe's pre-tokenize pattern) is sufficient here.
type level struct {
	index int
	re    *regexp.Regexp
}

// levels is the fixed, ranked separator hierarchy from the component
// design: paragraph, header, line, sentence, clause, word.
var levels = buildLevels()

func buildLevels() []level {
	specs := []struct {
		index    int
		patterns []string
	}{
		{0, []string{`\n\n+`}},
		{1, []string{`\n### `, `\n## `, `\n# `}},
		{2, []string{`\n`}},
		{3, []string{`\. `, `\? `, `! `}},
		{4, []string{`; `, `, `}},
		{5, []string{` `}},
	}

	out := make([]level, 0, len(specs))
	for _, s := range specs {
		pattern := ""
		for i, p := range s.patterns {
			if i > 0 {
				pattern += "|"
			}
			pattern += p
		}
		out = append(out, level{index: s.index, re: regexp.MustCompile(pattern)})
	}
	return out
}
