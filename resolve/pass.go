package resolve

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/context"
	"github.com/aki19035vc/rbs/env"
	"github.com/aki19035vc/rbs/typing"
	"github.com/aki19035vc/rbs/util"
)

// ResolveTypeNames runs the resolution pass (§4.6) over src, producing a
// new environment. If only is non-nil, top-level declarations not present
// in it are carried over unchanged rather than resolved; only==nil
// resolves everything. The source environment is never mutated.
func ResolveTypeNames(src *env.Environment, resolver NameResolver, only []ast.Decl) (*env.Environment, error) {
	out := env.New()

	for _, decl := range src.Declarations() {
		if only != nil && !util.Contains(only, decl) {
			if err := out.Insert(decl); err != nil {
				return nil, err
			}
			continue
		}

		resolved, err := resolveDeclaration(decl, nil, typing.RootNamespace, resolver)
		if err != nil {
			return nil, err
		}

		if err := out.Insert(resolved); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// resolveDeclaration dispatches on decl's kind, implementing §4.6's
// per-kind rewrite rules. outer is the path of enclosing class/module
// declarations, as they appear in the source environment (not their
// resolved copies), from which the lexical context is computed; prefix is
// the absolute namespace decl's own name is reprefixed with.
func resolveDeclaration(decl ast.Decl, outer []ast.Decl, prefix typing.Namespace, resolver NameResolver) (ast.Decl, error) {
	switch d := decl.(type) {
	case *ast.GlobalDecl:
		return ast.NewGlobalDecl(
			d.Name().WithPrefix(prefix), d.Loc(), d.Comment(), d.Annotations(),
			absoluteType(d.Type, nil, resolver),
		), nil

	case *ast.ClassDecl:
		return resolveClass(d, outer, prefix, resolver)

	case *ast.ModuleDecl:
		return resolveModule(d, outer, prefix, resolver)

	case *ast.InterfaceDecl:
		outerCtx := context.Calculate(namedOuter(outer))
		return ast.NewInterfaceDecl(
			d.Name().WithPrefix(prefix), d.Loc(), d.Comment(), d.Annotations(),
			d.TypeParams, resolveMembers(d.Members, outerCtx, resolver),
		), nil

	case *ast.TypeAliasDecl:
		outerCtx := context.Calculate(namedOuter(outer))
		return ast.NewTypeAliasDecl(
			d.Name().WithPrefix(prefix), d.Loc(), d.Comment(), d.Annotations(),
			d.TypeParams, absoluteType(d.Type, outerCtx, resolver),
		), nil

	case *ast.ConstantDecl:
		outerCtx := context.Calculate(namedOuter(outer))
		return ast.NewConstantDecl(
			d.Name().WithPrefix(prefix), d.Loc(), d.Comment(), d.Annotations(),
			absoluteType(d.Type, outerCtx, resolver),
		), nil

	case *ast.ClassAliasDecl:
		outerCtx := context.Calculate(namedOuter(outer))
		return ast.NewClassAliasDecl(
			d.Name().WithPrefix(prefix), d.Loc(), d.Comment(), d.Annotations(),
			resolveName(d.OldName, outerCtx, resolver),
		), nil

	case *ast.ModuleAliasDecl:
		outerCtx := context.Calculate(namedOuter(outer))
		return ast.NewModuleAliasDecl(
			d.Name().WithPrefix(prefix), d.Loc(), d.Comment(), d.Annotations(),
			resolveName(d.OldName, outerCtx, resolver),
		), nil

	default:
		return nil, &env.InternalError{Msg: "resolve_declaration: unrecognized declaration kind"}
	}
}

func resolveClass(d *ast.ClassDecl, outer []ast.Decl, prefix typing.Namespace, resolver NameResolver) (ast.Decl, error) {
	newName := d.Name().WithPrefix(prefix)

	outerCtx := context.Calculate(namedOuter(outer))
	innerCtx := context.AppendName(outerCtx, newName)
	outerNext := appendDecl(outer, d)
	prefixNext := newName.ToNamespace()

	var super *ast.SuperClass
	if d.Super != nil {
		super = &ast.SuperClass{
			Name: resolveName(d.Super.Name, outerCtx, resolver),
			Args: absoluteTypes(d.Super.Args, outerCtx, resolver),
		}
	}

	typeParams := resolveTypeParams(d.TypeParams, innerCtx, resolver)
	members := resolveMembers(d.Members, innerCtx, resolver)

	nested := make([]ast.Decl, len(d.Decls))
	for i, nd := range d.Decls {
		rd, err := resolveDeclaration(nd, outerNext, prefixNext, resolver)
		if err != nil {
			return nil, err
		}
		nested[i] = rd
	}

	return ast.NewClassDecl(newName, d.Loc(), d.Comment(), d.Annotations(), typeParams, super, members, nested), nil
}

func resolveModule(d *ast.ModuleDecl, outer []ast.Decl, prefix typing.Namespace, resolver NameResolver) (ast.Decl, error) {
	newName := d.Name().WithPrefix(prefix)

	outerCtx := context.Calculate(namedOuter(outer))
	innerCtx := context.AppendName(outerCtx, newName)
	outerNext := appendDecl(outer, d)
	prefixNext := newName.ToNamespace()

	var self *ast.SelfType
	if d.Self != nil {
		self = &ast.SelfType{Types: absoluteTypes(d.Self.Types, innerCtx, resolver)}
	}

	typeParams := resolveTypeParams(d.TypeParams, innerCtx, resolver)
	members := resolveMembers(d.Members, innerCtx, resolver)

	nested := make([]ast.Decl, len(d.Decls))
	for i, nd := range d.Decls {
		rd, err := resolveDeclaration(nd, outerNext, prefixNext, resolver)
		if err != nil {
			return nil, err
		}
		nested[i] = rd
	}

	return ast.NewModuleDecl(newName, d.Loc(), d.Comment(), d.Annotations(), typeParams, self, members, nested), nil
}

func resolveTypeParams(params []ast.TypeParam, ctx *context.Context, resolver NameResolver) []ast.TypeParam {
	if params == nil {
		return nil
	}

	out := make([]ast.TypeParam, len(params))
	for i, p := range params {
		out[i] = ast.TypeParam{
			Name:     p.Name,
			Variance: p.Variance,
			Bound:    absoluteType(p.Bound, ctx, resolver),
			Default:  absoluteType(p.Default, ctx, resolver),
		}
	}

	return out
}

// resolveMembers mirrors §4.6's member rules: each overload's signature
// (in both ordinary and bound positions), attribute/ivar/cvar types, and
// mixin name+args are rewritten under ctx. Unknown member kinds pass
// through unchanged.
func resolveMembers(members []ast.Member, ctx *context.Context, resolver NameResolver) []ast.Member {
	if members == nil {
		return nil
	}

	out := make([]ast.Member, len(members))
	for i, m := range members {
		switch v := m.(type) {
		case *ast.MethodDef:
			overloads := make([]ast.Overload, len(v.Overloads))
			for j, ov := range v.Overloads {
				overloads[j] = ast.Overload{
					TypeParams: resolveTypeParams(ov.TypeParams, ctx, resolver),
					Signature:  absoluteProc(ov.Signature, ctx, resolver),
				}
			}
			out[i] = &ast.MethodDef{Name: v.Name, Kind: v.Kind, Overloads: overloads}

		case *ast.AttrDef:
			out[i] = &ast.AttrDef{IvarName: v.IvarName, Access: v.Access, Type: absoluteType(v.Type, ctx, resolver)}

		case *ast.VarDef:
			out[i] = &ast.VarDef{Name: v.Name, Kind: v.Kind, Type: absoluteType(v.Type, ctx, resolver)}

		case *ast.MixinDef:
			out[i] = &ast.MixinDef{
				Kind: v.Kind,
				Name: resolveName(v.Name, ctx, resolver),
				Args: absoluteTypes(v.Args, ctx, resolver),
			}

		default:
			out[i] = m
		}
	}

	return out
}

func namedOuter(outer []ast.Decl) []context.Named {
	named := make([]context.Named, len(outer))
	for i, d := range outer {
		named[i] = d
	}
	return named
}

func appendDecl(outer []ast.Decl, d ast.Decl) []ast.Decl {
	next := make([]ast.Decl, len(outer)+1)
	copy(next, outer)
	next[len(outer)] = d
	return next
}
