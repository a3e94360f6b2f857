package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"builder-generator/internal/common"
)

// Diagnostics holds all diagnostic information from one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind classifies the failure.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Location is the source position the diagnostic refers to (may be invalid).
	Location token.Position
	// Args are the message arguments, in message-format order.
	Args []string
	// Target identifies the annotated type this relates to (if any).
	Target string
	// Property identifies the property this relates to (if any).
	Property string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// New builds an error diagnostic of the given kind, formatting its message
// from args.
func New(kind Kind, loc token.Position, args ...string) Diagnostic {
	return Diagnostic{
		Severity: DiagnosticError,
		Kind:     kind,
		Message:  kind.Format(args...),
		Location: loc,
		Args:     args,
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(kind Kind, message, target, property string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Kind:     kind,
		Message:  message,
		Target:   target,
		Property: property,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(kind Kind, message, target, property string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Kind:     kind,
		Message:  message,
		Target:   target,
		Property: property,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	return all
}

// OfKind returns the error diagnostics of the given kind.
func (d *Diagnostics) OfKind(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, e := range d.Errors {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Location.IsValid() {
		prefix = append(prefix, d.Location.String())
	}

	if d.Target != "" {
		prefix = append(prefix, "["+d.Target+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Kind != KindNone {
		msg = fmt.Sprintf("[%s] %s", d.Kind.ID(), msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
