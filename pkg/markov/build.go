package markov

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ctxCheckInterval is how many tokens are read between context checks.
const ctxCheckInterval = 4096

// buildOptions Is used by Build to configure default options.
type buildOptions struct {
	maxVocabulary int
	logger        *slog.Logger
}

// BuildOption is a function that configures a Build pass.
type BuildOption func(*buildOptions)

// WithMaxVocabulary caps the number of distinct tokens. A build that sees more
// distinct tokens fails with ErrVocabularyCapacityExceeded. Zero, the default,
// means unbounded.
func WithMaxVocabulary(n int) BuildOption {
	return func(o *buildOptions) { o.maxVocabulary = n }
}

// WithLogger sets the logger used to report build progress. By default, all
// logs are discarded.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build reads data once, tokenizes it with tokenizer, and returns the finished
// Chain. Every token is interned in first-seen order and every adjacent pair
// (previous -> current) is recorded as a successor edge. Any error aborts the
// build and no chain is returned, since a partial chain is unusable.
func Build(ctx context.Context, tokenizer Tokenizer, data io.Reader, opts ...BuildOption) (*Chain, error) {
	options := &buildOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(options)
	}

	chain := &Chain{
		registry: NewRegistry(options.maxVocabulary),
		graph:    NewGraph(),
	}

	stream := tokenizer.NewStream(data)
	var (
		prev      TokenID
		hasPrev   bool
		processed int64
	)

	for {
		if processed%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}

		id, err := chain.registry.Intern(token.Text)
		if err != nil {
			return nil, fmt.Errorf("building chain after %d tokens: %w", processed, err)
		}
		if int(id) == len(chain.eoc) { // first occurrence
			chain.eoc = append(chain.eoc, token.EOC)
			if isSentenceInitial(token.Text) {
				chain.starters = append(chain.starters, id)
			}
		}

		if hasPrev {
			// Record the interned string so every edge shares the registry's copy.
			chain.graph.RecordSuccessor(prev, chain.registry.Token(id))
		}
		prev, hasPrev = id, true
		processed++
	}

	stats := chain.Stats()
	options.logger.InfoContext(ctx, "Chain built",
		slog.Int64("tokens_processed", processed),
		slog.Int("vocab_size", stats.VocabSize),
		slog.Int("edges", stats.Edges),
		slog.Int("starting_tokens", stats.StartingTokens),
		slog.Int("dead_ends", stats.DeadEnds),
	)

	return chain, nil
}
