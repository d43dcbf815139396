package markov

import "errors"

var (
	// ErrEmptyVocabulary is returned by generation when the chain holds no
	// sentence-initial candidate (no token starts with an uppercase letter).
	ErrEmptyVocabulary = errors.New("markov: no sentence-initial token in vocabulary")

	// ErrVocabularyCapacityExceeded is returned by Intern and Build when a
	// configured vocabulary cap would be exceeded.
	ErrVocabularyCapacityExceeded = errors.New("markov: too many distinct tokens")

	// ErrUnknownToken is returned by GenerateFrom when the start token was never seen.
	ErrUnknownToken = errors.New("markov: token not found in vocabulary")

	// ErrInvalidBudget is returned when the byte budget leaves no room for output.
	ErrInvalidBudget = errors.New("markov: byte budget must be at least 2")
)
