package resolve

import (
	"github.com/aki19035vc/rbs/context"
	"github.com/aki19035vc/rbs/typing"
)

// absoluteType walks t, replacing every embedded type-name with the
// resolver's result under ctx. If the resolver returns nothing for a
// given name, that name is kept as-is so that a failure can be
// pinpointed downstream rather than silently dropped.
func absoluteType(t typing.TypeExpr, ctx *context.Context, resolver NameResolver) typing.TypeExpr {
	if t == nil {
		return nil
	}

	switch v := t.(type) {
	case *typing.ClassInstance:
		return &typing.ClassInstance{
			Name: resolveName(v.Name, ctx, resolver),
			Args: absoluteTypes(v.Args, ctx, resolver),
		}

	case *typing.AliasInstance:
		return &typing.AliasInstance{
			Name: resolveName(v.Name, ctx, resolver),
			Args: absoluteTypes(v.Args, ctx, resolver),
		}

	case *typing.TypeParamRef:
		return v

	case *typing.UnionType:
		return &typing.UnionType{Members: absoluteTypes(v.Members, ctx, resolver)}

	case *typing.TupleType:
		return &typing.TupleType{Elems: absoluteTypes(v.Elems, ctx, resolver)}

	case *typing.RecordType:
		fields := make([]typing.RecordField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = typing.RecordField{Name: f.Name, Type: absoluteType(f.Type, ctx, resolver)}
		}
		return &typing.RecordType{Fields: fields}

	case *typing.ProcType:
		return absoluteProc(v, ctx, resolver)

	case *typing.OptionalType:
		return &typing.OptionalType{Inner: absoluteType(v.Inner, ctx, resolver)}

	case *typing.LiteralType:
		return v

	case typing.LeafType:
		return v

	default:
		return v
	}
}

func absoluteProc(p *typing.ProcType, ctx *context.Context, resolver NameResolver) *typing.ProcType {
	if p == nil {
		return nil
	}

	var block *typing.ProcType
	if p.Block != nil {
		block = absoluteProc(p.Block, ctx, resolver)
	}

	var rest *typing.Param
	if p.RestParam != nil {
		rest = absoluteParam(p.RestParam, ctx, resolver)
	}

	var restKw *typing.Param
	if p.RestKeyword != nil {
		restKw = absoluteParam(p.RestKeyword, ctx, resolver)
	}

	return &typing.ProcType{
		Params:       absoluteParams(p.Params, ctx, resolver),
		OptionalArgs: absoluteParams(p.OptionalArgs, ctx, resolver),
		RestParam:    rest,
		Keywords:     absoluteParams(p.Keywords, ctx, resolver),
		RestKeyword:  restKw,
		Block:        block,
		ReturnType:   absoluteType(p.ReturnType, ctx, resolver),
	}
}

func absoluteParam(p *typing.Param, ctx *context.Context, resolver NameResolver) *typing.Param {
	return &typing.Param{Name: p.Name, Type: absoluteType(p.Type, ctx, resolver), Optional: p.Optional}
}

func absoluteParams(params []typing.Param, ctx *context.Context, resolver NameResolver) []typing.Param {
	if params == nil {
		return nil
	}

	out := make([]typing.Param, len(params))
	for i, p := range params {
		out[i] = typing.Param{Name: p.Name, Type: absoluteType(p.Type, ctx, resolver), Optional: p.Optional}
	}

	return out
}

func absoluteTypes(ts []typing.TypeExpr, ctx *context.Context, resolver NameResolver) []typing.TypeExpr {
	if ts == nil {
		return nil
	}

	out := make([]typing.TypeExpr, len(ts))
	for i, t := range ts {
		out[i] = absoluteType(t, ctx, resolver)
	}

	return out
}

func resolveName(name typing.TypeName, ctx *context.Context, resolver NameResolver) typing.TypeName {
	if abs, ok := resolver.Resolve(name, ctx); ok {
		return abs
	}

	return name
}
