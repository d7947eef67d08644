// Package tokenizer estimates language-model token counts for aggregate text.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	Model string
}

// DefaultEncodingName is the encoding used when no model is requested or the
// requested model is unknown to the vocabulary table.
const DefaultEncodingName = "cl100k_base"

const initializeTokenizerErrorFormat = "initialize tokenizer %s: %w"

// ResolveEncodingName maps a requested model to the identifier used for
// construction. It reports whether the identifier should be resolved through
// the model table or loaded directly as an encoding name.
func ResolveEncodingName(requestedModel string) (resolvedName string, useModelTable bool) {
	trimmedModel := strings.TrimSpace(requestedModel)
	if trimmedModel == "" {
		return DefaultEncodingName, false
	}
	return strings.ToLower(trimmedModel), true
}

// NewCounter returns a Counter for the requested model together with the name
// of the encoding actually selected. An unknown model falls back to the
// default encoding rather than failing; only a failure to load the default
// encoding itself is an error.
func NewCounter(cfg Config) (Counter, string, error) {
	resolvedName, useModelTable := ResolveEncodingName(cfg.Model)
	if useModelTable {
		encoding, encodingError := tiktoken.EncodingForModel(resolvedName)
		if encodingError == nil && encoding != nil {
			return openAICounter{encoding: encoding, name: resolvedName}, resolvedName, nil
		}
	}
	fallbackEncoding, fallbackError := tiktoken.GetEncoding(DefaultEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf(initializeTokenizerErrorFormat, DefaultEncodingName, fallbackError)
	}
	return openAICounter{encoding: fallbackEncoding, name: DefaultEncodingName}, DefaultEncodingName, nil
}
