package markov

// Stats holds aggregated statistics for a built Chain.
type Stats struct {
	VocabSize       int // The number of distinct tokens.
	Edges           int // The number of recorded successor edges, duplicates included.
	StartingTokens  int // The number of tokens that can start a sentence.
	TerminatorCount int // The number of tokens that end a sentence.
	DeadEnds        int // The number of tokens with no recorded successor.
}

// Stats returns a snapshot of statistics for the chain.
func (c *Chain) Stats() Stats {
	s := Stats{
		VocabSize:      c.registry.Len(),
		Edges:          c.graph.edges(),
		StartingTokens: len(c.starters),
	}
	for id := range c.registry.Len() {
		if c.eoc[id] {
			s.TerminatorCount++
		}
		if len(c.graph.Successors(TokenID(id))) == 0 {
			s.DeadEnds++
		}
	}
	return s
}
