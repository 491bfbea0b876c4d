// Package linkcheck defines an analyzer that verifies
// error types registered for errchain location tracking.
//
// A type is registered by placing the directive
//
//	//errchain:link
//
// in its doc comment.
// A registered type must be a struct that holds an errchain.Site
// or *errchain.Site, directly or through an embedded struct
// or pointer to struct,
// so every value of it can record where it was created.
//
// Additionally, keyed composite literals of structs
// that hold an errchain.Site directly must set it.
// A literal that leaves it unset produces an error
// that renders as "Unknown".
// This check can be disabled with -literals=false.
package linkcheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	_directive = "//errchain:link"
	_pkgPath   = "braces.dev/errchain"
	_siteName  = "Site"
)

// Analyzer reports registered error types without an errchain.Site,
// and literals that don't capture one.
var Analyzer = &analysis.Analyzer{
	Name:     "errchainlink",
	Doc:      "check that errchain:link error types record a location",
	URL:      "https://pkg.go.dev/braces.dev/errchain/internal/linkcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var checkLiterals bool

func init() {
	Analyzer.Flags.BoolVar(&checkLiterals, "literals", true,
		"report keyed literals that leave their errchain.Site unset")
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{
		(*ast.GenDecl)(nil),
		(*ast.CompositeLit)(nil),
	}, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.GenDecl:
			if n.Tok != token.TYPE {
				return
			}

			for _, spec := range n.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && !n.Lparen.IsValid() {
					// Without parentheses, the doc comment
					// is attached to the declaration.
					doc = n.Doc
				}

				if hasDirective(doc) {
					checkRegistered(pass, ts)
				}
			}

		case *ast.CompositeLit:
			if checkLiterals {
				checkLiteral(pass, n)
			}
		}
	})

	return nil, nil //nolint:nilnil // analysis.Analyzer contract
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == _directive {
			return true
		}
	}
	return false
}

func checkRegistered(pass *analysis.Pass, ts *ast.TypeSpec) {
	obj := pass.TypesInfo.Defs[ts.Name]
	if obj == nil {
		return
	}

	name := ts.Name.Name
	under := obj.Type().Underlying()
	st, ok := under.(*types.Struct)
	if !ok {
		pass.Reportf(ts.Name.Pos(), "errchain:link requires a struct type, %s is %s",
			name, types.TypeString(under, types.RelativeTo(pass.Pkg)))
		return
	}

	if !holdsSite(st, make(map[*types.Struct]struct{})) {
		pass.Reportf(ts.Name.Pos(), "%s is marked errchain:link but has no errchain.Site field", name)
	}
}

// holdsSite reports whether the struct has a Site field,
// or embeds a struct (or pointer to one) that does.
func holdsSite(st *types.Struct, seen map[*types.Struct]struct{}) bool {
	if _, ok := seen[st]; ok {
		return false
	}
	seen[st] = struct{}{}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if isSite(f.Type()) {
			return true
		}

		if !f.Embedded() {
			continue
		}
		if inner, ok := deref(f.Type()).Underlying().(*types.Struct); ok && holdsSite(inner, seen) {
			return true
		}
	}
	return false
}

func checkLiteral(pass *analysis.Pass, lit *ast.CompositeLit) {
	t := pass.TypesInfo.TypeOf(lit)
	if t == nil {
		return
	}
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		// Elided &T in []*T{{...}}.
		t = ptr.Elem()
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return
	}

	site := siteField(st)
	if site == nil {
		return
	}

	if len(lit.Elts) > 0 {
		if _, keyed := lit.Elts[0].(*ast.KeyValueExpr); !keyed {
			// Unkeyed literals set every field.
			return
		}
	}

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if key, ok := kv.Key.(*ast.Ident); ok && key.Name == site.Name() {
			return
		}
	}

	pass.Reportf(lit.Lbrace, "%s literal does not capture its errchain.Site",
		types.TypeString(t, types.RelativeTo(pass.Pkg)))
}

// siteField returns the direct Site field of st, if any.
func siteField(st *types.Struct) *types.Var {
	for i := 0; i < st.NumFields(); i++ {
		if f := st.Field(i); isSite(f.Type()) {
			return f
		}
	}
	return nil
}

// isSite reports whether t is errchain.Site or *errchain.Site.
func isSite(t types.Type) bool {
	named, ok := types.Unalias(deref(t)).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == _pkgPath && obj.Name() == _siteName
}

func deref(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).Underlying().(*types.Pointer); ok {
		return ptr.Elem()
	}
	return t
}
