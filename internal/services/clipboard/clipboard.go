// Package clipboard copies rendered scan output to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places rendered output on the system clipboard.
type Copier interface {
	Copy(renderedOutput string) error
}

// Service is the github.com/atotto/clipboard backed Copier.
type Service struct{}

// NewService constructs the system clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with renderedOutput.
func (service *Service) Copy(renderedOutput string) error {
	return clipboard.WriteAll(renderedOutput)
}

var _ Copier = (*Service)(nil)
