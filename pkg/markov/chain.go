package markov

import (
	"unicode"
	"unicode/utf8"
)

// Graph maps a TokenID to the ordered list of token strings observed
// immediately after it. Duplicates are kept, so the number of times a string
// appears in a list is its empirical frequency as a successor.
type Graph struct {
	succs [][]string
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}

// RecordSuccessor appends to to the successor list of from.
func (g *Graph) RecordSuccessor(from TokenID, to string) {
	if n := int(from) + 1 - len(g.succs); n > 0 {
		g.succs = append(g.succs, make([][]string, n)...)
	}
	g.succs[from] = append(g.succs[from], to)
}

// Successors returns every successor recorded for id, in insertion order.
// The returned slice must not be modified.
func (g *Graph) Successors(id TokenID) []string {
	if id < 0 || int(id) >= len(g.succs) {
		return nil
	}
	return g.succs[id]
}

// edges returns the total number of recorded successors.
func (g *Graph) edges() int {
	var n int
	for _, s := range g.succs {
		n += len(s)
	}
	return n
}

// Chain is the result of a Build pass: the token Registry, the successor
// Graph, and the per-token facts the generator needs. A Chain is read-only
// and safe for concurrent use once Build has returned it.
type Chain struct {
	registry *Registry
	graph    *Graph
	starters []TokenID // ids whose first character is uppercase, in id order
	eoc      []bool    // indexed by TokenID
}

// Len returns the number of distinct tokens in the chain.
func (c *Chain) Len() int {
	return c.registry.Len()
}

// Token returns the text of id. It panics if id is not part of the chain.
func (c *Chain) Token(id TokenID) string {
	return c.registry.Token(id)
}

// Lookup returns the id of token, if the corpus contained it.
func (c *Chain) Lookup(token string) (TokenID, bool) {
	return c.registry.Lookup(token)
}

// Successors returns the successor strings of id with duplicates, in corpus order.
// The returned slice must not be modified.
func (c *Chain) Successors(id TokenID) []string {
	return c.graph.Successors(id)
}

// Starters returns the sentence-initial candidates. The returned slice must
// not be modified.
func (c *Chain) Starters() []TokenID {
	return c.starters
}

// EndsSentence reports whether id was flagged as an End-Of-Chain token by
// the tokenizer the chain was built with.
func (c *Chain) EndsSentence(id TokenID) bool {
	return c.eoc[id]
}

// isSentenceInitial reports whether token starts with an uppercase letter.
func isSentenceInitial(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return unicode.IsUpper(r)
}
