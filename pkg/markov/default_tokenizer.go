package markov

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultDelimiters are the characters the DefaultTokenizer splits on.
	DefaultDelimiters = " \n\r"
	// DefaultTerminators are the characters that end a sentence when they are
	// the last character of a token.
	DefaultTerminators = ".!?"
)

// DefaultTokenizer is a default implementation of the Tokenizer interface.
// It splits text on a set of delimiter characters, collapsing consecutive
// delimiters, and flags tokens whose last character is a terminator as
// End-Of-Chain (EOC) tokens. Its behavior can be customized with functional
// options.
type DefaultTokenizer struct {
	separator   string
	delimiters  string
	terminators string
}

// Option Is a function that configures a DefaultTokenizer.
type Option func(*DefaultTokenizer)

// WithSeparator Sets the string used for joining tokens during generation.
// Default: " "
func WithSeparator(sep string) Option {
	return func(t *DefaultTokenizer) {
		t.separator = sep
	}
}

// WithDelimiters sets the characters that separate tokens in the input.
// An empty set is ignored.
// Default: " \n\r"
func WithDelimiters(delims string) Option {
	return func(t *DefaultTokenizer) {
		if delims != "" {
			t.delimiters = delims
		}
	}
}

// WithTerminators sets the characters that end a sentence when they close a token.
// Default: ".!?"
func WithTerminators(terms string) Option {
	return func(t *DefaultTokenizer) {
		t.terminators = terms
	}
}

// NewDefaultTokenizer creates a new tokenizer with default settings, which can be
// overridden by providing one or more Option functions.
func NewDefaultTokenizer(opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		separator:   " ",
		delimiters:  DefaultDelimiters,
		terminators: DefaultTerminators,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Separator Returns the configured separator string.
func (t *DefaultTokenizer) Separator() string {
	return t.separator
}

// IsTerminator reports whether the last character of token is a terminator.
func (t *DefaultTokenizer) IsTerminator(token string) bool {
	if token == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(token)
	return strings.ContainsRune(t.terminators, r)
}

// NewStream Returns the stream processor. Tokens may be of any length.
func (t *DefaultTokenizer) NewStream(r io.Reader) StreamTokenizer {
	return &DefaultStreamTokenizer{
		reader:    bufio.NewReader(r),
		tokenizer: t,
	}
}

// All returns the tokens of text in corpus order. The sequence is lazy and
// may be ranged over any number of times; each iteration starts from the
// beginning of text.
func (t *DefaultTokenizer) All(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			start := strings.IndexFunc(rest, t.isNotDelimiter)
			if start < 0 {
				return
			}
			rest = rest[start:]
			end := strings.IndexFunc(rest, t.isDelimiter)
			if end < 0 {
				yield(rest)
				return
			}
			if !yield(rest[:end]) {
				return
			}
			rest = rest[end:]
		}
	}
}

func (t *DefaultTokenizer) isDelimiter(r rune) bool {
	return strings.ContainsRune(t.delimiters, r)
}

func (t *DefaultTokenizer) isNotDelimiter(r rune) bool {
	return !t.isDelimiter(r)
}

// DefaultStreamTokenizer is the default implementation of the StreamTokenizer interface.
// It reads runes from a bufio.Reader and accumulates them until a delimiter.
type DefaultStreamTokenizer struct {
	reader    *bufio.Reader
	tokenizer *DefaultTokenizer
	buf       []byte
}

// Next returns the next token from the stream. It returns a Token and a nil error on
// success. When the stream is exhausted, it returns a nil Token and io.EOF.
// Any other error indicates a problem reading from the underlying stream.
func (s *DefaultStreamTokenizer) Next() (*Token, error) {
	s.buf = s.buf[:0]
	for {
		r, size, err := s.reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && len(s.buf) > 0 {
				break
			}
			return nil, err
		}
		if s.tokenizer.isDelimiter(r) {
			if len(s.buf) > 0 {
				break
			}
			continue
		}
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 is kept byte for byte.
			_ = s.reader.UnreadRune()
			b, _ := s.reader.ReadByte()
			s.buf = append(s.buf, b)
			continue
		}
		s.buf = utf8.AppendRune(s.buf, r)
	}

	word := string(s.buf)
	return &Token{Text: word, EOC: s.tokenizer.IsTerminator(word)}, nil
}
