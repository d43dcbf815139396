package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CTAG07/frankentext/pkg/markov"
)

const testCorpus = `Is it raining? It is raining! Are we there? We are there!
The cat sat. The dog ran? The bird flew!`

func newTestGenerator(t *testing.T, text string) *markov.Generator {
	t.Helper()
	tokenizer := markov.NewDefaultTokenizer()
	chain, err := markov.Build(context.Background(), tokenizer, strings.NewReader(text))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return markov.NewGenerator(chain, tokenizer)
}

func TestGenerateEnding(t *testing.T) {
	gen := newTestGenerator(t, testCorpus)
	src := rand.New(rand.NewPCG(1, 1))

	for _, ending := range []string{"?", "!", "."} {
		sentence, err := generateEnding(context.Background(), gen, ending, 200, 10_000, src)
		if err != nil {
			t.Fatalf("generateEnding(%q) failed: %v", ending, err)
		}
		if !strings.HasSuffix(sentence, ending) {
			t.Errorf("sentence %q does not end with %q", sentence, ending)
		}
		if len(sentence) > 199 {
			t.Errorf("sentence exceeds budget: %d bytes", len(sentence))
		}
	}
}

func TestGenerateEnding_Exhausted(t *testing.T) {
	gen := newTestGenerator(t, "Only periods here. Nothing else.")

	_, err := generateEnding(context.Background(), gen, "?", 100, 25, rand.New(rand.NewPCG(2, 2)))
	if !errors.Is(err, errAttemptsExhausted) {
		t.Fatalf("expected errAttemptsExhausted, got %v", err)
	}
	if !strings.Contains(err.Error(), `"?"`) {
		t.Errorf("error should name the ending: %v", err)
	}
}

func TestGenerateEnding_Cancelled(t *testing.T) {
	gen := newTestGenerator(t, "Only periods here. Nothing else.")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		_, err := generateEnding(ctx, gen, "?", 100, 2_000_000_000, rand.New(rand.NewPCG(4, 4)))
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("generateEnding kept retrying after cancellation")
	}
}

func TestGenerateEnding_GenerationError(t *testing.T) {
	gen := newTestGenerator(t, "no capitals anywhere.")

	_, err := generateEnding(context.Background(), gen, ".", 100, 1000, rand.New(rand.NewPCG(3, 3)))
	if !errors.Is(err, markov.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("WARN", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestRun_FileCorpus(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.txt")
	// The control characters are sanitized into delimiters.
	if err := os.WriteFile(corpusPath, []byte(strings.ReplaceAll(testCorpus, " ", "\t")), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := writeFile(t, "config.json", `{
  "log_level": "error",
  "corpus_config": {"path": "`+corpusPath+`", "sanitize": true},
  "chain_config": {"sentence_bytes": 120, "endings": ["?", "!"], "max_attempts": 10000, "seed": 42}
}`)

	var stdout bytes.Buffer
	if err := run(context.Background(), configPath, &stdout, io.Discard); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := stdout.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output should end with a newline: %q", out)
	}
	sentences := strings.Split(strings.TrimSuffix(out, "\n"), "\n\n")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(sentences), out)
	}
	if !strings.HasSuffix(sentences[0], "?") || !strings.HasSuffix(sentences[1], "!") {
		t.Errorf("sentences end with the wrong characters: %q", sentences)
	}
	if strings.Contains(out, "\t") {
		t.Errorf("tab survived sanitization: %q", out)
	}
}

func TestRun_DatabaseCorpusToFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "corpus.db")
	db, err := initDB(dbPath)
	if err != nil {
		t.Fatalf("initDB failed: %v", err)
	}
	seedDocuments(t, db, "Who goes there?", "Nobody goes there!", "Who knows?")
	if err = db.Close(); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.txt")
	configPath := writeFile(t, "config.yaml", `log_level: error
output_path: `+outPath+`
corpus_config:
  path: ""
  database: `+dbPath+`
chain_config:
  sentence_bytes: 80
  endings: ["?"]
  max_attempts: 1000
  seed: 9
`)

	var stdout bytes.Buffer
	if err = run(context.Background(), configPath, &stdout, io.Discard); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be written to stdout, got %q", stdout.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	sentence := strings.TrimSuffix(string(data), "\n")
	if !strings.HasSuffix(sentence, "?") || strings.Contains(sentence, "\n") {
		t.Errorf("unexpected output %q", data)
	}
}

func TestRun_MissingCorpus(t *testing.T) {
	configPath := writeFile(t, "config.json", `{
  "corpus_config": {"path": "`+filepath.Join(t.TempDir(), "nope.txt")+`"}
}`)
	err := run(context.Background(), configPath, io.Discard, io.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func seedDocuments(t *testing.T, db *sql.DB, bodies ...string) {
	t.Helper()
	if _, err := db.Exec(`CREATE TABLE documents (body TEXT);`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	for _, body := range bodies {
		if _, err := db.Exec(`INSERT INTO documents (body) VALUES (?);`, body); err != nil {
			t.Fatalf("failed to insert document: %v", err)
		}
	}
}
