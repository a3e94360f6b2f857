// Package gen emits builder source files from builder plans.
//
// Code is built with github.com/dave/jennifer and formatted with
// golang.org/x/tools/imports. Every generated file is self-contained: the
// builder type with its accessors, the from-source constructor, Build, and
// the Update helper.
package gen
