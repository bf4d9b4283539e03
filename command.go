package remotecontrol

import (
	"context"
	"reflect"
	"strings"
)

// Command is a reversible unit of work bound to one or more receivers.
//
// Invoke performs exactly one semantic operation. Reverse restores the
// receiver to the state observed immediately before the most recent Invoke.
// Reverse without a prior Invoke must leave the receiver untouched.
//
// The context carries the dispatch Entry (see WithEntry) for decorators such
// as logging and tracing. It is not a cancellation signal: both operations
// always run to completion.
type Command interface {
	Invoke(ctx context.Context)
	Reverse(ctx context.Context)
}

// NoCommand is the null command. Every unbound slot holds it so the remote
// never needs a presence check before dispatch.
type NoCommand struct{}

func (NoCommand) Invoke(context.Context)  {}
func (NoCommand) Reverse(context.Context) {}

var noCommand Command = NoCommand{}

// Null returns the shared null command.
func Null() Command {
	return noCommand
}

// orNull substitutes the null command for a nil binding.
func orNull(cmd Command) Command {
	if cmd == nil {
		return noCommand
	}
	return cmd
}

// NewCommandFunc creates a Command from two plain functions.
//
// This is a helper for quickly building a command without declaring a
// separate type. A nil function is treated as a no-op.
//
// Example Usage:
//
//	cmd := NewCommandFunc("GarageOpen",
//	    func(ctx context.Context) { door.Open() },
//	    func(ctx context.Context) { door.Close() },
//	)
func NewCommandFunc(name string, invoke, reverse func(ctx context.Context)) Command {
	return &commandFunc{name: name, invoke: invoke, reverse: reverse}
}

type commandFunc struct {
	name    string
	invoke  func(ctx context.Context)
	reverse func(ctx context.Context)
}

func (c *commandFunc) Invoke(ctx context.Context) {
	if c.invoke != nil {
		c.invoke(ctx)
	}
}

func (c *commandFunc) Reverse(ctx context.Context) {
	if c.reverse != nil {
		c.reverse(ctx)
	}
}

func (c *commandFunc) Name() string {
	if c.name == "" {
		return "CommandFunc"
	}
	return c.name
}

// CommandName returns the display name of a command.
//
// Commands that implement Name() string report that value; decorators use
// this to stay transparent in Describe output. Every other command is named
// after its concrete type, without package qualifier or pointer marks, so
// *home.LightOnCommand becomes "LightOnCommand".
func CommandName(cmd Command) string {
	if cmd == nil {
		return TypeName(noCommand)
	}
	if n, ok := cmd.(interface{ Name() string }); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	return TypeName(cmd)
}

// TypeName returns the bare type name of v.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	// generic instantiations carry their type arguments in brackets
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}
