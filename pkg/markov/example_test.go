package markov_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/CTAG07/frankentext/pkg/markov"
)

func ExampleDefaultTokenizer_All() {
	tokenizer := markov.NewDefaultTokenizer()
	for token := range tokenizer.All("Hello world!\r\nGood  bye.") {
		fmt.Println(token)
	}
	// Output:
	// Hello
	// world!
	// Good
	// bye.
}

func ExampleGenerator_Generate() {
	ctx := context.Background()
	tokenizer := markov.NewDefaultTokenizer()
	chain, err := markov.Build(ctx, tokenizer, strings.NewReader("Hello world!"))
	if err != nil {
		fmt.Println(err)
		return
	}

	sentence, err := markov.NewGenerator(chain, tokenizer).Generate(ctx, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sentence)
	// Output: Hello world!
}
