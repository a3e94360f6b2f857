package diagnostic

import (
	"fmt"
	"strings"

	"builder-generator/internal/common"
)

// Kind identifies the condition a diagnostic reports.
type Kind int

const (
	// KindNone marks free-form diagnostics that carry no stable code.
	KindNone Kind = iota
	// KindUnexpectedFailure is any uncaught failure during synthesis of one target.
	KindUnexpectedFailure
	// KindIncompatibleHostVersion reports a module go version below the minimum.
	KindIncompatibleHostVersion
	// KindMissingNestedBuilder reports a list element type without a builder.
	KindMissingNestedBuilder
	// KindMissingDefaultValue reports a property without a default value.
	KindMissingDefaultValue
)

type descriptor struct {
	id     string
	code   string
	title  string
	format string
}

var descriptors = map[Kind]descriptor{
	KindUnexpectedFailure: {
		id:     "NUB0000",
		code:   "UnexpectedFailure",
		title:  "Unexpected error occurred.",
		format: "{0}: {1} | {2}",
	},
	KindIncompatibleHostVersion: {
		id:     "NUB0001",
		code:   "HostVersionTooLow",
		title:  "Incompatible Go version.",
		format: "Must target at least Go {1} to use the builder generator (module go version is {0}).",
	},
	KindMissingNestedBuilder: {
		id:     "NUB0002",
		code:   "NoBuilderFor",
		title:  "No builder found.",
		format: "No builder found for type {0} (expected {1}) required by property {2}.",
	},
	KindMissingDefaultValue: {
		id:     "NUB0003",
		code:   "NoDefaultValue",
		title:  "No default value.",
		format: "Unable to determine default value for {0}, add method {1} returning default value to the builder.",
	},
}

// ID returns the stable numeric identifier (e.g. "NUB0002").
func (k Kind) ID() string {
	if d, ok := descriptors[k]; ok {
		return d.id
	}

	return ""
}

// Code returns the stable symbolic code (e.g. "NoBuilderFor").
func (k Kind) Code() string {
	if d, ok := descriptors[k]; ok {
		return d.code
	}

	return ""
}

// Title returns a one-line summary of the condition.
func (k Kind) Title() string {
	if d, ok := descriptors[k]; ok {
		return d.title
	}

	return ""
}

// String returns the symbolic code, or "unknown".
func (k Kind) String() string {
	if code := k.Code(); code != "" {
		return code
	}

	if k == KindNone {
		return "none"
	}

	return common.UnknownStr
}

// Format renders the kind's message with positional arguments. Placeholders
// are substituted in one pass, so argument text is never re-expanded.
func (k Kind) Format(args ...string) string {
	d, ok := descriptors[k]
	if !ok {
		return strings.Join(args, " ")
	}

	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, fmt.Sprintf("{%d}", i), a)
	}

	return strings.NewReplacer(pairs...).Replace(d.format)
}
