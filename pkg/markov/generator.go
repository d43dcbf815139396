package markov

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// Source is the entropy a Generator draws from. IntN returns a uniformly
// distributed integer in [0, n) and may panic if n <= 0; the generator never
// calls it with an empty range. *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces sentences by walking a finished Chain. It holds no
// mutable state of its own, so one Generator may serve concurrent callers as
// long as each call uses a goroutine-safe Source (the default is).
type Generator struct {
	chain        *Chain
	separator    string
	isTerminator func(token string) bool
	logger       *slog.Logger
}

// NewGenerator creates a Generator over chain, joining tokens with the
// tokenizer's separator.
func NewGenerator(chain *Chain, tokenizer Tokenizer) *Generator {
	return &Generator{
		chain:        chain,
		separator:    tokenizer.Separator(),
		isTerminator: tokenizer.IsTerminator,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
// Providing a `log/slog.Logger` will enable debug logging of how each walk ended.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Chain returns the chain the generator walks.
func (g *Generator) Chain() *Chain {
	return g.chain
}
