package markov

import (
	"io"
)

// TokenID is the dense, zero-based identity of a token within a Registry.
// Ids are assigned in first-seen order and never reused or invalidated.
type TokenID int

// Token represents a single tokenized unit of text. It contains the text itself
// and a boolean flag indicating if its last character is a sentence terminator.
type Token struct {
	Text string
	EOC  bool
}

// Tokenizer is an interface that defines the contract for splitting input text
// into tokens. This allows the chain builder and the generator to be independent
// of the specific tokenization strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
	// Separator returns the string used to join tokens when building a
	// generated sentence.
	Separator() string
	// IsTerminator reports whether a token ends a sentence.
	IsTerminator(token string) bool
}

// StreamTokenizer is an interface for a stateful tokenizer that processes a
// stream of data, returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (*Token, error)
}
