// Package chunker provides an o200k_base-compatible BPE tokenizer and a
// recursive/merge/overlap semantic text chunker built on top of it.
package chunker

// Generate documentation for the vocabulary package
//go:generate gomarkdoc -o ./vocab/README.md -e ./vocab --embed --repository.url https://github.com/blenbot/RustyChunker-for-gpt4 --repository.default-branch master --repository.path /vocab

// Generate documentation for the BPE engine package
//go:generate gomarkdoc -o ./bpe/README.md -e ./bpe --embed --repository.url https://github.com/blenbot/RustyChunker-for-gpt4 --repository.default-branch master --repository.path /bpe

// Generate documentation for the preprocessor package
//go:generate gomarkdoc -o ./preprocess/README.md -e ./preprocess --embed --repository.url https://github.com/blenbot/RustyChunker-for-gpt4 --repository.default-branch master --repository.path /preprocess

// Generate documentation for the segmenter package
//go:generate gomarkdoc -o ./segment/README.md -e ./segment --embed --repository.url https://github.com/blenbot/RustyChunker-for-gpt4 --repository.default-branch master --repository.path /segment

// Generate documentation for the chunk package
//go:generate gomarkdoc -o ./chunk/README.md -e ./chunk --embed --repository.url https://github.com/blenbot/RustyChunker-for-gpt4 --repository.default-branch master --repository.path /chunk

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/chunker/README.md -e ./cmd/chunker --embed --repository.url https://github.com/blenbot/RustyChunker-for-gpt4 --repository.default-branch master --repository.path /cmd/chunker
