package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/CTAG07/frankentext/pkg/corpus"
	"github.com/CTAG07/frankentext/pkg/markov"
	"github.com/natefinch/atomic"
)

// errAttemptsExhausted is returned when no generated sentence had the wanted ending.
var errAttemptsExhausted = errors.New("attempts exhausted")

// newLogger builds the process logger with the level named in config.
func newLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// newSource seeds a generator, from the wall clock when seed is zero.
func newSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// openCorpus returns the configured corpus text and a function releasing it.
func openCorpus(ctx context.Context, cfg *CorpusConfig) (io.Reader, func(), error) {
	var (
		r       io.Reader
		release = func() {}
	)
	if cfg.Database != "" {
		db, err := initDB(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open corpus database: %w", err)
		}
		defer func() { _ = db.Close() }()
		if r, err = corpus.ReadSQL(ctx, db, cfg.Query); err != nil {
			return nil, nil, err
		}
	} else {
		f, err := corpus.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		r, release = f, func() { _ = f.Close() }
	}

	if cfg.Sanitize {
		r = corpus.Sanitize(r)
	}
	return r, release, nil
}

// generateEnding regenerates until a sentence ends with ending, giving up
// after attempts tries or when ctx is done. A generation error is returned at
// once, since a chain without sentence-initial tokens will not grow one on retry.
func generateEnding(ctx context.Context, gen *markov.Generator, ending string, maxBytes, attempts int, src markov.Source) (string, error) {
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("generating sentence ending in %q, attempt %d: %w", ending, attempt, err)
		}
		sentence, err := gen.Generate(ctx, maxBytes, markov.WithSource(src))
		if err != nil {
			return "", err
		}
		if strings.HasSuffix(sentence, ending) {
			return sentence, nil
		}
	}
	return "", fmt.Errorf("no sentence ending in %q after %d attempts: %w", ending, attempts, errAttemptsExhausted)
}

// run loads the configuration, builds the chain and emits one sentence per
// configured ending, separated by an empty line.
func run(ctx context.Context, configPath string, stdout, stderr io.Writer) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(config.LogLevel, stderr)

	r, release, err := openCorpus(ctx, config.Corpus)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	defer release()

	tokenizer := markov.NewDefaultTokenizer(
		markov.WithDelimiters(config.Chain.Delimiters),
		markov.WithTerminators(config.Chain.Terminators),
	)
	chain, err := markov.Build(ctx, tokenizer, r,
		markov.WithMaxVocabulary(config.Chain.MaxVocabulary),
		markov.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to build chain: %w", err)
	}

	gen := markov.NewGenerator(chain, tokenizer)
	gen.SetLogger(logger)
	src := newSource(config.Chain.Seed)

	sentences := make([]string, 0, len(config.Chain.Endings))
	for _, ending := range config.Chain.Endings {
		sentence, err := generateEnding(ctx, gen, ending, config.Chain.SentenceBytes, config.Chain.MaxAttempts, src)
		if err != nil {
			return fmt.Errorf("failed to generate sentence: %w", err)
		}
		sentences = append(sentences, sentence)
	}
	if len(sentences) == 0 {
		logger.Warn("No endings configured, nothing to generate")
		return nil
	}

	out := strings.Join(sentences, "\n\n") + "\n"
	if config.OutputPath != "" {
		if err = atomic.WriteFile(config.OutputPath, strings.NewReader(out)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Sentences written", "path", config.OutputPath, "count", len(sentences))
		return nil
	}
	_, err = io.WriteString(stdout, out)
	return err
}
