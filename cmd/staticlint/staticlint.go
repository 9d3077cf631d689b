// Package staticlint implements the project's static analyzer multichecker.
//
// It bundles:
//
//	a selection of standard analyzers from golang.org/x/tools/go/analysis/passes;
//	all SA-class analyzers of staticcheck.io, plus selected ST and S checks;
//	bodyclose, errcheck and go-critic;
//	the custom directhttp analyzer, which reports net/http calls made
//	outside the request gateway; every backend call must go through the
//	gateway so it gets classified and carries the session credential.
//
// Build and run:
//
//	go build -o cmd/staticlint/staticlint ./cmd/staticlint
//	cmd/staticlint/staticlint ./...
package main

import (
	gocritic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// styleChecks - the non-SA staticcheck.io checks the project opts into.
var styleChecks = map[string]bool{
	"ST1005": true,
	"ST1000": true,
	"S1008":  true,
	"S1021":  true,
}

func passesChecks() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		defers.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		stdmethods.Analyzer,
		stringintconv.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		timeformat.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}
}

func staticcheckIoChecks() []*analysis.Analyzer {
	var checks []*analysis.Analyzer
	for _, v := range staticcheck.Analyzers {
		checks = append(checks, v.Analyzer)
	}
	for _, v := range stylecheck.Analyzers {
		if styleChecks[v.Analyzer.Name] {
			checks = append(checks, v.Analyzer)
		}
	}
	for _, v := range simple.Analyzers {
		if styleChecks[v.Analyzer.Name] {
			checks = append(checks, v.Analyzer)
		}
	}
	return checks
}

func publicChecks() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		bodyclose.Analyzer,
		errcheck.Analyzer,
		gocritic.Analyzer,
	}
}

func main() {
	var checks []*analysis.Analyzer
	checks = append(checks, passesChecks()...)
	checks = append(checks, staticcheckIoChecks()...)
	checks = append(checks, publicChecks()...)
	checks = append(checks, DirectHTTPAnalyzer)

	multichecker.Main(checks...)
}
