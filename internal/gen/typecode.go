package gen

import (
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode renders t as a type expression, qualifying named types by import
// path.
func typeCode(t types.Type) *jen.Statement {
	switch t := t.(type) {
	case *types.Basic:
		if t.Kind() == types.UnsafePointer {
			return jen.Qual("unsafe", "Pointer")
		}

		return jen.Id(t.Name())
	case *types.Named:
		return withTypeArgs(objectCode(t.Obj()), t.TypeArgs())
	case *types.Alias:
		return withTypeArgs(objectCode(t.Obj()), t.TypeArgs())
	case *types.TypeParam:
		return jen.Id(t.Obj().Name())
	case *types.Pointer:
		return jen.Op("*").Add(typeCode(t.Elem()))
	case *types.Slice:
		return jen.Index().Add(typeCode(t.Elem()))
	case *types.Array:
		return jen.Index(jen.Lit(int(t.Len()))).Add(typeCode(t.Elem()))
	case *types.Map:
		return jen.Map(typeCode(t.Key())).Add(typeCode(t.Elem()))
	case *types.Chan:
		switch t.Dir() {
		case types.SendOnly:
			return jen.Chan().Op("<-").Add(typeCode(t.Elem()))
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(typeCode(t.Elem()))
		default:
			return jen.Chan().Add(typeCode(t.Elem()))
		}
	case *types.Signature:
		return jen.Func().Add(signatureCode(t))
	case *types.Struct:
		return structCode(t)
	case *types.Interface:
		return interfaceCode(t)
	default:
		return jen.Id(t.String())
	}
}

func objectCode(obj *types.TypeName) *jen.Statement {
	if obj.Pkg() == nil {
		return jen.Id(obj.Name())
	}

	return jen.Qual(obj.Pkg().Path(), obj.Name())
}

func withTypeArgs(s *jen.Statement, args *types.TypeList) *jen.Statement {
	if args.Len() == 0 {
		return s
	}

	codes := make([]jen.Code, args.Len())
	for i := range args.Len() {
		codes[i] = typeCode(args.At(i))
	}

	return s.Types(codes...)
}

// signatureCode renders the parameter and result lists of sig.
func signatureCode(sig *types.Signature) *jen.Statement {
	params := make([]jen.Code, sig.Params().Len())
	for i := range sig.Params().Len() {
		pt := sig.Params().At(i).Type()
		if sig.Variadic() && i == sig.Params().Len()-1 {
			params[i] = jen.Op("...").Add(typeCode(pt.(*types.Slice).Elem()))
			continue
		}

		params[i] = typeCode(pt)
	}

	results := make([]jen.Code, sig.Results().Len())
	for i := range sig.Results().Len() {
		results[i] = typeCode(sig.Results().At(i).Type())
	}

	s := jen.Params(params...)

	switch len(results) {
	case 0:
		return s
	case 1:
		return s.Add(results[0])
	default:
		return s.Params(results...)
	}
}

func structCode(st *types.Struct) *jen.Statement {
	fields := make([]jen.Code, st.NumFields())

	for i := range st.NumFields() {
		f := st.Field(i)

		var field *jen.Statement
		if f.Embedded() {
			field = typeCode(f.Type())
		} else {
			field = jen.Id(f.Name()).Add(typeCode(f.Type()))
		}

		if tag := st.Tag(i); tag != "" {
			field = field.Lit(tag)
		}

		fields[i] = field
	}

	return jen.Struct(fields...)
}

func interfaceCode(it *types.Interface) *jen.Statement {
	if it.Empty() {
		return jen.Id("any")
	}

	var elems []jen.Code

	for i := range it.NumEmbeddeds() {
		elems = append(elems, typeCode(it.EmbeddedType(i)))
	}

	for i := range it.NumExplicitMethods() {
		m := it.ExplicitMethod(i)
		elems = append(elems, jen.Id(m.Name()).Add(signatureCode(m.Type().(*types.Signature))))
	}

	return jen.Interface(elems...)
}
