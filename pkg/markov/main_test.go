package markov

import (
	"context"
	"go/build"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// buildTestChain builds a chain from text with the default tokenizer and
// returns it together with a Generator over it.
func buildTestChain(t testing.TB, text string, opts ...BuildOption) (*Chain, *Generator) {
	t.Helper()
	tokenizer := NewDefaultTokenizer()
	chain, err := Build(context.Background(), tokenizer, strings.NewReader(text), opts...)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return chain, NewGenerator(chain, tokenizer)
}

// seededSource returns a deterministic Source for reproducible walks.
func seededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "This is a fallback corpus for benchmarking. It is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
