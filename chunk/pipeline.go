package chunk

import (
	"strings"

	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
	"github.com/blenbot/RustyChunker-for-gpt4/preprocess"
	"github.com/blenbot/RustyChunker-for-gpt4/segment"
)

// defaultTargetTokens and defaultOverlapTokens are the facade's default
// budget and overlap window, per the external interface contract.
const (
	defaultTargetTokens  = 256
	defaultOverlapTokens = 16
)

// pipelineConfig holds configuration during Pipeline construction.
type pipelineConfig struct {
	targetTokens  int
	overlapTokens int
}

// Option configures a Pipeline at construction time.
type Option func(*pipelineConfig)

// WithTargetTokens overrides the per-chunk token budget.
func WithTargetTokens(n int) Option {
	return func(c *pipelineConfig) {
		c.targetTokens = n
	}
}

// WithOverlapTokens overrides the number of trailing tokens carried
// forward from one chunk into the next.
func WithOverlapTokens(n int) Option {
	return func(c *pipelineConfig) {
		c.overlapTokens = n
	}
}

// Pipeline is the per-page entry point: preprocess, short-circuit if the
// whole page already fits the budget, otherwise segment, merge, and
// overlap.
type Pipeline struct {
	eng           *bpe.Engine
	targetTokens  int
	overlapTokens int
}

// New builds a Pipeline over eng with the given options applied on top of
// the default 256-token budget and 16-token overlap.
func New(eng *bpe.Engine, opts ...Option) *Pipeline {
	cfg := pipelineConfig{
		targetTokens:  defaultTargetTokens,
		overlapTokens: defaultOverlapTokens,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pipeline{
		eng:           eng,
		targetTokens:  cfg.targetTokens,
		overlapTokens: cfg.overlapTokens,
	}
}

// ChunkPage runs the full preprocess/segment/merge/overlap pipeline over
// one page of raw text and returns its ChunkRecords in document order.
func (p *Pipeline) ChunkPage(page int, text, source string) ([]ChunkRecord, error) {
	cleaned := preprocess.Clean(text)
	if strings.TrimSpace(cleaned) == "" {
		return nil, nil
	}

	wholeCount, err := p.eng.Count(cleaned)
	if err != nil {
		return nil, NewChunkingError("tokenize whole page", err)
	}
	if wholeCount <= p.targetTokens {
		return []ChunkRecord{{
			Page:       page,
			ChunkID:    0,
			Text:       cleaned,
			Source:     source,
			TokenCount: wholeCount,
		}}, nil
	}

	segments, err := segment.Split(cleaned, p.eng, p.targetTokens)
	if err != nil {
		return nil, NewChunkingError("segment", err)
	}

	chunks, err := Merge(segments, p.eng, p.targetTokens)
	if err != nil {
		return nil, err
	}

	records, err := Overlap(chunks, p.eng, p.overlapTokens)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Page = page
		records[i].Source = source
	}
	return records, nil
}
