package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"builder-generator/internal/match"
)

// DirectivePrefix starts every comment directive understood by the generator.
const DirectivePrefix = "//builder:"

// Directive names.
const (
	DirectiveGenerate  = "generate"
	DirectiveFieldType = "fieldtype"
	DirectiveName      = "name"
	DirectiveIgnore    = "ignore"
	DirectiveOptional  = "optional"
)

var knownDirectives = []string{
	DirectiveGenerate,
	DirectiveFieldType,
	DirectiveName,
	DirectiveIgnore,
	DirectiveOptional,
}

// Directives holds the parsed //builder: directives of one declaration.
type Directives struct {
	Generate  bool
	FieldType string
	Name      string
	Ignore    bool
	Optional  bool
}

// DirectiveError reports a malformed or unknown directive.
type DirectiveError struct {
	Pos         token.Position
	Directive   string
	Msg         string
	Suggestions []string
}

func (e *DirectiveError) Error() string {
	msg := fmt.Sprintf("%s: //builder:%s: %s", e.Pos, e.Directive, e.Msg)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

// parseDirectives extracts directives from the given comment groups. Groups
// may be nil. Later occurrences of a valued directive win.
func parseDirectives(fset *token.FileSet, groups ...*ast.CommentGroup) (Directives, error) {
	var d Directives

	for _, cg := range groups {
		if cg == nil {
			continue
		}

		for _, c := range cg.List {
			if !strings.HasPrefix(c.Text, DirectivePrefix) {
				continue
			}

			name, arg, _ := strings.Cut(strings.TrimPrefix(c.Text, DirectivePrefix), " ")
			arg = strings.TrimSpace(arg)

			if err := d.apply(name, arg); err != nil {
				err.Pos = fset.Position(c.Pos())
				return Directives{}, err
			}
		}
	}

	return d, nil
}

func (d *Directives) apply(name, arg string) *DirectiveError {
	switch name {
	case DirectiveGenerate:
		d.Generate = true
	case DirectiveIgnore:
		d.Ignore = true
	case DirectiveOptional:
		d.Optional = true
	case DirectiveFieldType:
		if arg == "" {
			return &DirectiveError{Directive: name, Msg: "missing type expression"}
		}

		d.FieldType = arg
	case DirectiveName:
		if !token.IsIdentifier(arg) || !token.IsExported(arg) {
			return &DirectiveError{Directive: name, Msg: fmt.Sprintf("%q is not an exported identifier", arg)}
		}

		d.Name = arg
	default:
		return &DirectiveError{
			Directive:   name,
			Msg:         "unknown directive",
			Suggestions: match.Suggest(name, knownDirectives, 1),
		}
	}

	return nil
}

// hasGenerateDirective reports whether any of the groups marks a type for
// generation, without validating other directives.
func hasGenerateDirective(groups ...*ast.CommentGroup) bool {
	for _, cg := range groups {
		if cg == nil {
			continue
		}

		for _, c := range cg.List {
			if strings.TrimSpace(c.Text) == DirectivePrefix+DirectiveGenerate {
				return true
			}
		}
	}

	return false
}
