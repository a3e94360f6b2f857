package plan

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is the classification of one property.
type Kind int

const (
	// KindScalar stores the declared type as is.
	KindScalar Kind = iota
	// KindStringList accumulates a list of strings.
	KindStringList
	// KindInt32List accumulates a list of int32.
	KindInt32List
	// KindNestedBuilderList holds one builder per element in a RefList.
	KindNestedBuilderList
	// KindOverriddenField stores the type named by //builder:fieldtype.
	KindOverriddenField
)

// IsList reports whether the kind is one of the list kinds.
func (k Kind) IsList() bool {
	return k == KindStringList || k == KindInt32List || k == KindNestedBuilderList
}
