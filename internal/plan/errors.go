package plan

import (
	"errors"
	"go/token"

	"builder-generator/internal/diagnostic"
)

var (
	// ErrNoConstructor is returned when no constructor matches the properties.
	ErrNoConstructor = errors.New("no constructor match")
	// ErrAmbiguousConstructor is returned when several constructors match.
	ErrAmbiguousConstructor = errors.New("multiple constructor matches")
	// ErrNameCollision is returned when two generated members share a name.
	ErrNameCollision = errors.New("generated name collision")
)

// ResolutionError is a recoverable planning failure that is reported as a
// diagnostic of Kind.
type ResolutionError struct {
	Kind        diagnostic.Kind
	Pos         token.Position
	Args        []string
	Property    string
	Suggestions []string
}

func (e *ResolutionError) Error() string {
	return e.Kind.Format(e.Args...)
}

// Diagnostic converts the error into a diagnostic for target.
func (e *ResolutionError) Diagnostic(target string) diagnostic.Diagnostic {
	d := diagnostic.New(e.Kind, e.Pos, e.Args...)
	d.Target = target
	d.Property = e.Property
	d.Suggestions = e.Suggestions

	return d
}
