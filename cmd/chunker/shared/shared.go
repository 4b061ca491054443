// Package shared holds the CLI-wide vocabulary flag and engine loader that
// every chunker subcommand needs, so each subcommand package can stay
// independent of the root command and of each other.
package shared

import (
	"fmt"

	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
	"github.com/blenbot/RustyChunker-for-gpt4/vocab"
)

// VocabPath is bound to the root command's persistent --vocab flag.
var VocabPath string

// LoadEngine loads the vocabulary at VocabPath and builds a *bpe.Engine
// over it. Every subcommand that tokenizes or chunks text calls this.
func LoadEngine() (*bpe.Engine, error) {
	if VocabPath == "" {
		return nil, fmt.Errorf("--vocab is required: path to an o200k_base-format vocabulary file")
	}
	v, err := vocab.LoadFile(VocabPath)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}
	return bpe.New(v), nil
}
