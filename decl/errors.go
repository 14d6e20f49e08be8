package decl

import (
	"fmt"

	"github.com/rubiojr/jnibind/bridge"
	"modernc.org/token"
)

// ParseError reports a declaration or parameter that does not match the
// declaration grammar.
type ParseError struct {
	Pos token.Position
	Msg string
}

func (e *ParseError) Error() string { return withPos(e.Pos, e.Msg) }

func (e *ParseError) message() string { return e.Msg }

// TypeError attaches the position of the offending declaration to a
// bridge.UnknownTypeError. errors.As with *bridge.UnknownTypeError
// matches it.
type TypeError struct {
	Pos token.Position
	Err *bridge.UnknownTypeError
}

func (e *TypeError) Error() string { return withPos(e.Pos, e.message()) }

func (e *TypeError) message() string { return e.Err.Error() }

func (e *TypeError) Unwrap() error { return e.Err }

// MissingFileError reports a declaration source that cannot be read.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// CollisionError reports two methods of one declaration set that map to
// the same overload name, and therefore to the same registration entry
// and the same Java native method.
type CollisionError struct {
	OverloadName string
	First        *Method
	Second       *Method
}

func (e *CollisionError) Error() string { return withPos(e.Second.Pos, e.message()) }

func (e *CollisionError) message() string {
	return fmt.Sprintf("overload name %q of %s collides with %s declared at %s",
		e.OverloadName, e.Second.Decl(), e.First.Decl(), e.First.Pos)
}

// positioned is implemented by the errors that carry a source position.
type positioned interface {
	error
	message() string
}

// unpositioned presents a positioned error without its position prefix,
// for lists that print the position themselves. errors.As still reaches
// the original error.
type unpositioned struct {
	err positioned
}

func (e unpositioned) Error() string { return e.err.message() }

func (e unpositioned) Unwrap() error { return e.err }

// PositionOf returns the source position carried by err, if any.
func PositionOf(err error) (token.Position, bool) {
	switch e := err.(type) {
	case *ParseError:
		return e.Pos, true
	case *TypeError:
		return e.Pos, true
	case *CollisionError:
		return e.Second.Pos, true
	}
	return token.Position{}, false
}

func withPos(pos token.Position, msg string) string {
	if !pos.IsValid() && pos.Filename == "" {
		return msg
	}
	return pos.String() + ": " + msg
}
