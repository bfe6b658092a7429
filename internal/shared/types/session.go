package types

import (
	"context"
	"io"
)

// Session is the state of one interactive shell. CurrentDir is always an
// absolute, cleaned path and only changes through successful navigation.
type Session struct {
	ID         string
	CurrentDir string
	Out        io.Writer
}

// Handler runs one command against a session
type Handler func(ctx context.Context, sess *Session, args []string) error

// Provider groups related commands. Handlers must hold an entry for every
// Tool in Definition.
type Provider interface {
	Definition() Service
	Handlers() map[string]Handler
}
