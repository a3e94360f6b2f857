package plan

import (
	"go/token"
	"go/types"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// PropertyDescriptor is the classified form of one non-ignored property.
type PropertyDescriptor struct {
	// Name is the generated accessor name (after //builder:name).
	Name string
	// SourceName is the getter called on the source value.
	SourceName string
	// FieldName is the unexported builder field.
	FieldName string
	Kind      Kind
	// SourceType is the getter's declared result type.
	SourceType types.Type
	// FieldType is the type of the builder field. It is nil for
	// KindNestedBuilderList, whose field is a *reflist.RefList of the
	// element builder.
	FieldType types.Type
	// ResultType is the type handed to the constructor.
	ResultType types.Type
	Optional   bool
	Pos        token.Position
	// Element is set for KindNestedBuilderList only.
	Element *ElementBuilder
	// Default is set when the getter or Build may need to materialize an
	// unset field.
	Default *DefaultExpr
	// InitHook is true when the builder declares Initialize<Name>.
	InitHook bool
	// BuildHook is true when the builder declares Build<Name>.
	BuildHook bool
}

// DirectAccess reports whether the field is read without materializing a
// default: its type cannot be nil, or nil is a legal value.
func (p *PropertyDescriptor) DirectAccess() bool {
	if p.Kind == KindNestedBuilderList {
		return p.Optional
	}

	return !IsNillable(p.FieldType) || p.Optional
}

// InitHookName returns the initializer hook method name.
func (p *PropertyDescriptor) InitHookName() string {
	return "Initialize" + p.Name
}

// BuildHookName returns the build hook method name.
func (p *PropertyDescriptor) BuildHookName() string {
	return "Build" + p.Name
}

// SetterName returns the generated setter name.
func (p *PropertyDescriptor) SetterName() string {
	return "Set" + p.Name
}

// ElementBuilder names the builder of a list element type.
type ElementBuilder struct {
	// Elem is the element's named type.
	Elem *types.Named
	// ElemPointer is true when the list holds *Elem.
	ElemPointer bool
	// SourcePointer is true when the element builder is created from and
	// builds *Elem.
	SourcePointer bool
	// PkgPath is the import path of the element builder's package.
	PkgPath string
	// Name is the element builder's type name.
	Name string
}

// ID returns the qualified element builder name.
func (e *ElementBuilder) ID() string {
	return e.PkgPath + "." + e.Name
}

// ConstructorName returns the element builder's constructor name.
func (e *ElementBuilder) ConstructorName() string {
	return "New" + e.Name
}

// NeedsAdapter reports whether list elements and the element builder disagree
// on pointer-ness.
func (e *ElementBuilder) NeedsAdapter() bool {
	return e.ElemPointer != e.SourcePointer
}

// Arg binds one constructor parameter to the property that supplies it.
type Arg struct {
	Param    analyze.Param
	Property int // index into BuilderPlan.Properties
	// Variadic marks the spread last parameter.
	Variadic bool
}

// BuilderPlan is everything needed to emit one builder.
type BuilderPlan struct {
	Target *analyze.Target
	// Name is the builder type name.
	Name string
	// PkgPath is the builders package import path.
	PkgPath string
	// Source is the type the builder is created from and builds.
	Source      types.Type
	Properties  []PropertyDescriptor
	Constructor *analyze.Constructor
	Args        []Arg
	// HasAux is true when the companion declares the aux struct to embed.
	HasAux bool
	// Aux lists the aux struct's builder-only fields.
	Aux []analyze.AuxField
	// Diagnostics holds warnings that did not stop planning.
	Diagnostics diagnostic.Diagnostics
}

// ConstructorName returns the builder's from-source constructor name.
func (p *BuilderPlan) ConstructorName() string {
	return "New" + p.Name
}

// UpdateName returns the name of the update helper.
func (p *BuilderPlan) UpdateName() string {
	return "Update" + p.Target.Name
}

// AuxStructName returns the aux struct type name.
func (p *BuilderPlan) AuxStructName() string {
	return analyze.AuxStructName(p.Name)
}
