package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// DirectHTTPAnalyzer reports direct use of the net/http package-level
// client (http.Get, http.Post, http.DefaultClient, ...) outside the
// gateway package. Calls that bypass the gateway are not classified,
// carry no credential and dodge the no-retry contract.
var DirectHTTPAnalyzer = &analysis.Analyzer{
	Name: "directhttp",
	Doc:  "reports backend calls that bypass the request gateway",
	Run:  runDirectHTTP,
}

var forbiddenHTTPNames = map[string]bool{
	"Get":           true,
	"Head":          true,
	"Post":          true,
	"PostForm":      true,
	"DefaultClient": true,
}

func runDirectHTTP(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "gateway" {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			sel, ok := node.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok || !forbiddenHTTPNames[sel.Sel.Name] {
				return true
			}
			pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
			if !ok || pkgName.Imported().Path() != "net/http" {
				return true
			}
			pass.Reportf(sel.Pos(), "direct net/http call bypasses the request gateway")
			return true
		})
	}
	return nil, nil
}
