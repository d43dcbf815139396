package markov

import "fmt"

// Registry deduplicates token strings, assigning each a dense, zero-based
// TokenID in first-seen order. A Registry is not safe for concurrent writes;
// once building is done it may be read from any number of goroutines.
type Registry struct {
	ids    map[string]TokenID
	tokens []string
	limit  int // 0 means unbounded
}

// NewRegistry returns an empty Registry. A positive limit caps the number of
// distinct tokens; zero or a negative limit leaves the vocabulary unbounded.
func NewRegistry(limit int) *Registry {
	if limit < 0 {
		limit = 0
	}
	return &Registry{
		ids:   make(map[string]TokenID),
		limit: limit,
	}
}

// Intern returns the id previously assigned to token, or assigns the next one.
// The registry grows by at most one entry per call. When the registry is
// capped and full, an unseen token reports ErrVocabularyCapacityExceeded and
// the registry is left unchanged.
func (r *Registry) Intern(token string) (TokenID, error) {
	if id, ok := r.ids[token]; ok {
		return id, nil
	}
	if r.limit > 0 && len(r.tokens) >= r.limit {
		return 0, fmt.Errorf("interning %q with %d tokens registered: %w", token, len(r.tokens), ErrVocabularyCapacityExceeded)
	}
	id := TokenID(len(r.tokens))
	r.tokens = append(r.tokens, token)
	r.ids[token] = id
	return id, nil
}

// Lookup returns the id of token without registering it.
func (r *Registry) Lookup(token string) (TokenID, bool) {
	id, ok := r.ids[token]
	return id, ok
}

// Token returns the string for id. It panics if id was not issued by r.
func (r *Registry) Token(id TokenID) string {
	return r.tokens[id]
}

// Len returns the number of distinct tokens.
func (r *Registry) Len() int {
	return len(r.tokens)
}
