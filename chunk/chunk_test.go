package chunk_test

import (
	"strings"
	"testing"

	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
	"github.com/blenbot/RustyChunker-for-gpt4/chunk"
	"github.com/blenbot/RustyChunker-for-gpt4/internal/testvocab"
)

func newEngine(corpus []string) *bpe.Engine {
	return bpe.New(testvocab.Build(corpus, 600))
}

// S1: empty input produces no records.
func TestScenarioS1EmptyInput(t *testing.T) {
	eng := newEngine(nil)
	p := chunk.New(eng, chunk.WithTargetTokens(50), chunk.WithOverlapTokens(5))

	records, err := p.ChunkPage(1, "", "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records for empty input, want 0", len(records))
	}
}

// S2: input that fits the budget produces exactly one verbatim chunk.
func TestScenarioS2FitsBudget(t *testing.T) {
	eng := newEngine([]string{"Hello", " world", "."})
	p := chunk.New(eng, chunk.WithTargetTokens(50), chunk.WithOverlapTokens(5))

	text := "Hello world."
	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want, err := eng.Count(text)
	if err != nil {
		t.Fatal(err)
	}
	r := records[0]
	if r.ChunkID != 0 || r.Text != text || r.TokenCount != want {
		t.Fatalf("unexpected record: %+v, want token count %d", r, want)
	}
}

// S3: preprocessing collapses blank-line runs; no produced chunk carries a
// triple newline.
func TestScenarioS3PreprocessCollapse(t *testing.T) {
	eng := newEngine([]string{"A", ".", "B", "C"})
	p := chunk.New(eng, chunk.WithTargetTokens(50), chunk.WithOverlapTokens(5))

	text := "A.\n\n\n\nB.\n \n \n\nC."
	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range records {
		if strings.Contains(r.Text, "\n\n\n") {
			t.Fatalf("record retained a triple newline: %q", r.Text)
		}
	}
}

// S4: three paragraphs (roughly 90-120 tokens each under this test's
// vocabulary) under a 50-token budget produce at least 3 chunks, and chunk
// 2's text begins with the decoded 5-token tail of chunk 1.
func TestScenarioS4ParagraphOverlapCascade(t *testing.T) {
	para1 := "First " + strings.Repeat("alpha beta gamma delta ", 10)
	para2 := "Second " + strings.Repeat("epsilon zeta eta theta ", 10)
	para3 := "Third " + strings.Repeat("iota kappa lambda mu ", 10)
	text := para1 + "\n\n" + para2 + "\n\n" + para3

	corpus := []string{para1, para2, para3, "First", "Second", "Third",
		"alpha", " beta", " gamma", " delta", "epsilon", " zeta", " eta", " theta",
		"iota", " kappa", " lambda", " mu"}
	eng := newEngine(corpus)
	p := chunk.New(eng, chunk.WithTargetTokens(50), chunk.WithOverlapTokens(5))

	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) < 3 {
		t.Fatalf("got %d records, want at least 3", len(records))
	}
	if !strings.HasPrefix(records[0].Text, "First") {
		t.Fatalf("first record does not begin with paragraph 1 text: %q", records[0].Text)
	}

	prevRanks, err := eng.EncodeOrdinary(records[0].Text)
	if err != nil {
		t.Fatal(err)
	}
	tail, err := eng.Decode(prevRanks[len(prevRanks)-5:])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(records[1].Text, strings.TrimSpace(tail)) {
		t.Fatalf("second record does not begin with first record's tail %q: %q", tail, records[1].Text)
	}
}

// S5: one 200-token run of space-separated "words" with no other
// separators must fall through to the space level and produce more than
// one chunk.
func TestScenarioS5FallThroughWordLevel(t *testing.T) {
	words := make([]string, 0, 200)
	corpus := []string{}
	for i := 0; i < 200; i++ {
		words = append(words, "w")
		corpus = append(corpus, "w", " w")
	}
	text := strings.Join(words, " ")
	eng := newEngine(corpus)
	p := chunk.New(eng, chunk.WithTargetTokens(50), chunk.WithOverlapTokens(5))

	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) < 2 {
		t.Fatalf("expected multiple chunks from a 200-word run, got %d", len(records))
	}
}

// S6: "one two three" repeated 100 times (about 1,200 tokens under this
// test's vocabulary) produces dense chunk_ids and a final chunk ending with
// the input's last words.
func TestScenarioS6DenseChunkIDs(t *testing.T) {
	unit := "one two three "
	text := strings.TrimSpace(strings.Repeat(unit, 100))
	corpus := []string{"one", " two", " three"}
	eng := newEngine(corpus)
	p := chunk.New(eng, chunk.WithTargetTokens(50), chunk.WithOverlapTokens(5))

	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) == 0 {
		t.Fatal("expected at least one chunk")
	}
	for i, r := range records {
		if r.ChunkID != i {
			t.Fatalf("chunk_id not dense at index %d: got %d", i, r.ChunkID)
		}
	}
	last := records[len(records)-1]
	if !strings.HasSuffix(strings.TrimSpace(last.Text), "three") {
		t.Fatalf("final chunk does not end with the input's last word: %q", last.Text)
	}
}

// Property 8: chunk_id values form [0, 1, ..., k-1] exactly.
func TestChunkIDsAreDenseAndOrdered(t *testing.T) {
	para := strings.Repeat("one two three four five six seven eight ", 20)
	text := para + "\n\n" + para + "\n\n" + para + "\n\n" + para
	eng := newEngine([]string{para, "one", " two", " three", " four", " five", " six", " seven", " eight"})
	p := chunk.New(eng, chunk.WithTargetTokens(30), chunk.WithOverlapTokens(5))

	records, err := p.ChunkPage(7, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range records {
		if r.ChunkID != i {
			t.Fatalf("expected chunk_id %d at index %d, got %d", i, i, r.ChunkID)
		}
		if r.Page != 7 || r.Source != "doc" {
			t.Fatalf("page/source not echoed: %+v", r)
		}
	}
}

// Property 9: with overlap enabled and ≥2 chunks, chunk k's text carries
// the trimmed decoded tail of chunk k-1 as a prefix.
func TestOverlapPrependsPreviousTail(t *testing.T) {
	para := strings.Repeat("one two three four five six seven eight ", 20)
	text := para + "\n\n" + para + "\n\n" + para
	eng := newEngine([]string{para, "one", " two", " three", " four", " five", " six", " seven", " eight"})
	p := chunk.New(eng, chunk.WithTargetTokens(30), chunk.WithOverlapTokens(5))

	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(records))
	}

	for i := 1; i < len(records); i++ {
		prevRanks, err := eng.EncodeOrdinary(records[i-1].Text)
		if err != nil {
			t.Fatal(err)
		}
		n := 5
		if n > len(prevRanks) {
			n = len(prevRanks)
		}
		tail, err := eng.Decode(prevRanks[len(prevRanks)-n:])
		if err != nil {
			t.Fatal(err)
		}
		if tail != "" && !strings.HasPrefix(records[i].Text, strings.TrimSpace(tail)) {
			t.Fatalf("chunk %d does not begin with chunk %d's decoded tail %q: %q", i, i-1, tail, records[i].Text)
		}
	}
}

// Property 10: a page that fits the budget as a whole produces exactly one
// chunk whose text equals the preprocessed text and whose chunk_id is 0.
func TestProperty10SingleChunkEqualsCleanedText(t *testing.T) {
	eng := newEngine([]string{"plain", " text", " input"})
	p := chunk.New(eng, chunk.WithTargetTokens(256), chunk.WithOverlapTokens(16))

	records, err := p.ChunkPage(2, "plain text input", "s")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ChunkID != 0 || records[0].Text != "plain text input" {
		t.Fatalf("unexpected single-chunk result: %+v", records)
	}
}

func TestZeroOverlapSkipsPrefix(t *testing.T) {
	para := strings.Repeat("one two three four five six seven eight ", 20)
	text := para + "\n\n" + para + "\n\n" + para
	eng := newEngine([]string{para, "one", " two", " three", " four", " five", " six", " seven", " eight"})
	p := chunk.New(eng, chunk.WithTargetTokens(30), chunk.WithOverlapTokens(0))

	records, err := p.ChunkPage(1, text, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(records))
	}
	// With overlap disabled, each non-first chunk's text is exactly its
	// pre-overlap merged form, so it must not start with trailing words
	// copied from the previous chunk (its decoded 5-token tail).
	if strings.HasPrefix(records[1].Text, records[0].Text) {
		t.Fatalf("overlap=0 still prepended previous chunk's text: %q", records[1].Text)
	}
	prevRanks, err := eng.EncodeOrdinary(records[0].Text)
	if err != nil {
		t.Fatal(err)
	}
	tail, err := eng.Decode(prevRanks[len(prevRanks)-5:])
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(records[1].Text, strings.TrimSpace(tail)) {
		t.Fatalf("overlap=0 still prepended previous chunk's tail %q: %q", tail, records[1].Text)
	}
}
