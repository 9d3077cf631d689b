package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestDirectHTTPAnalyzer(t *testing.T) {
	// applies the analyzer to the packages under testdata/directhttp/src
	analysistest.Run(t, analysistest.TestData()+"/directhttp", DirectHTTPAnalyzer, "app", "gateway")
}

func TestCheckSelection(t *testing.T) {
	if len(passesChecks()) == 0 {
		t.Error("no passes checks selected")
	}
	if len(staticcheckIoChecks()) == 0 {
		t.Error("no staticcheck.io checks selected")
	}
	if len(publicChecks()) == 0 {
		t.Error("no public checks selected")
	}
}
