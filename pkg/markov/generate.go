package markov

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	source Source
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in Generate and GenerateFrom.
type GenerateOption func(*generateOptions)

// WithSource sets the random source for a single call. Callers running
// generations concurrently with a non-thread-safe source, such as a seeded
// *rand.Rand, must give each goroutine its own.
func WithSource(src Source) GenerateOption {
	return func(o *generateOptions) {
		if src != nil {
			o.source = src
		}
	}
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{source: globalSource{}}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Generate walks the chain from a random sentence-initial token and returns
// the space-joined sentence. The result is at most maxBytes-1 bytes long,
// leaving room for a terminator in fixed-size buffers.
//
// The walk stops when a token ending in a terminator is appended, when the
// current token has no successors, or when the next token would not fit; in
// the last two cases the sentence does not end in a terminator. Callers that
// need a particular ending must retry themselves.
//
// ErrEmptyVocabulary is returned if no token starts with an uppercase letter,
// and ErrInvalidBudget if maxBytes is below 2.
func (g *Generator) Generate(ctx context.Context, maxBytes int, opts ...GenerateOption) (string, error) {
	if maxBytes < 2 {
		return "", fmt.Errorf("generate with budget %d: %w", maxBytes, ErrInvalidBudget)
	}
	options := newGenerateOptions(opts)

	starters := g.chain.Starters()
	if len(starters) == 0 {
		return "", ErrEmptyVocabulary
	}
	start := starters[options.source.IntN(len(starters))]

	return g.walk(ctx, start, maxBytes, options), nil
}

// GenerateFrom is like Generate but starts the walk at the given token, which
// need not be sentence-initial. ErrUnknownToken is returned if the corpus never
// contained start.
func (g *Generator) GenerateFrom(ctx context.Context, start string, maxBytes int, opts ...GenerateOption) (string, error) {
	if maxBytes < 2 {
		return "", fmt.Errorf("generate with budget %d: %w", maxBytes, ErrInvalidBudget)
	}
	id, ok := g.chain.Lookup(start)
	if !ok {
		return "", fmt.Errorf("start token '%s': %w", start, ErrUnknownToken)
	}
	return g.walk(ctx, id, maxBytes, newGenerateOptions(opts)), nil
}

// walk contains the main loop for generating a sentence.
func (g *Generator) walk(ctx context.Context, start TokenID, maxBytes int, options *generateOptions) string {
	limit := maxBytes - 1
	var builder strings.Builder
	builder.Grow(min(limit, 256))

	first := g.chain.Token(start)
	if len(first) > limit {
		// A cut token must not pass for a finished sentence.
		builder.WriteString(g.trimTerminators(truncate(first, limit)))
		g.logger.DebugContext(ctx, "Generation terminated by reaching byte budget",
			slog.Int("max_bytes", maxBytes),
			slog.Int("generated_bytes", builder.Len()),
		)
		return builder.String()
	}
	builder.WriteString(first)
	if g.chain.EndsSentence(start) {
		g.logger.DebugContext(ctx, "Generation terminated by EOC token",
			slog.Int("generated_bytes", builder.Len()),
		)
		return builder.String()
	}

	current := start
	for {
		succs := g.chain.Successors(current)
		if len(succs) == 0 { // Dead end in chain
			g.logger.DebugContext(ctx, "Generation terminated due to dead-end",
				slog.String("last_token", g.chain.Token(current)),
				slog.Int("generated_bytes", builder.Len()),
			)
			break
		}

		next := succs[options.source.IntN(len(succs))]
		if builder.Len()+len(g.separator)+len(next) >= limit {
			g.logger.DebugContext(ctx, "Generation terminated by reaching byte budget",
				slog.Int("max_bytes", maxBytes),
				slog.Int("generated_bytes", builder.Len()),
			)
			break
		}
		builder.WriteString(g.separator)
		builder.WriteString(next)

		id, ok := g.chain.Lookup(next)
		if !ok || g.chain.EndsSentence(id) {
			g.logger.DebugContext(ctx, "Generation terminated by EOC token",
				slog.Int("generated_bytes", builder.Len()),
			)
			break
		}
		current = id
	}

	return builder.String()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// trimTerminators strips trailing terminator characters from s.
func (g *Generator) trimTerminators(s string) string {
	for s != "" && g.isTerminator(s) {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}
