/*
Package markov builds a first-order Markov chain over the words of a text and
generates pseudo-random sentences from it.

A Chain is built once, in a single pass over a tokenized corpus, and is
read-only afterwards. Every token is interned into a Registry that hands out
dense ids in first-seen order, and every adjacent pair of tokens is recorded as
an edge in the token's successor list. Duplicates are kept, so picking a
successor uniformly at random reproduces the corpus' next-word frequencies.

A Generator walks the chain from a token that starts with an uppercase letter
until it reaches a token ending in a terminator ('.', '!' or '?'), a token with
no successors, or the caller's byte budget.

	tok := markov.NewDefaultTokenizer()
	chain, err := markov.Build(ctx, tok, strings.NewReader(text))
	if err != nil {
		return err
	}
	sentence, err := markov.NewGenerator(chain, tok).Generate(ctx, 1000)
*/
package markov
