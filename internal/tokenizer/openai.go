package tokenizer

import (
	"errors"

	"github.com/pkoukk/tiktoken-go"
)

type openAICounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter openAICounter) Name() string {
	return counter.name
}

// CountString counts with the ordinary encoder: special-token markers inside
// file content are tokenized as plain text, never as control tokens.
func (counter openAICounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, errors.New("nil tiktoken encoder")
	}
	tokenIdentifiers := counter.encoding.EncodeOrdinary(input)
	return len(tokenIdentifiers), nil
}

var _ Counter = openAICounter{}
