package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"builder-generator/internal/diagnostic"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.Faint)
	okColor      = color.New(color.FgGreen)
	hintColor    = color.New(color.FgBlue)
)

// printDiagnostics writes every diagnostic of ds, errors first.
func printDiagnostics(w io.Writer, ds diagnostic.Diagnostics) {
	for _, d := range ds.All() {
		printDiagnostic(w, d)
	}
}

func printDiagnostic(w io.Writer, d diagnostic.Diagnostic) {
	var sev *color.Color

	switch d.Severity {
	case diagnostic.DiagnosticError:
		sev = errorColor
	case diagnostic.DiagnosticWarning:
		sev = warningColor
	default:
		sev = infoColor
	}

	loc := d.Target
	if d.Location.IsValid() {
		loc = d.Location.String()
	}

	if loc != "" {
		fmt.Fprintf(w, "%s: ", loc)
	}

	fmt.Fprint(w, sev.Sprint(d.Severity.String()))

	if d.Kind != diagnostic.KindNone {
		fmt.Fprint(w, " ", codeColor.Sprintf("[%s]", d.Kind.ID()))
	}

	if d.Property != "" {
		fmt.Fprintf(w, " %s:", d.Property)
	}

	fmt.Fprintf(w, " %s\n", d.Message)

	for _, s := range d.Suggestions {
		fmt.Fprintf(w, "\t%s %s\n", hintColor.Sprint("did you mean"), s)
	}
}

func printError(w io.Writer, err error) {
	var de *errDiagnostics
	if errors.As(err, &de) {
		fmt.Fprintln(w, errorColor.Sprint(err.Error()))
		return
	}

	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("error:"), err)
}

func printWritten(w io.Writer, verb, path string) {
	fmt.Fprintf(w, "%s %s\n", okColor.Sprint(verb), path)
}
