// Package compiletest type-checks small Go programs so tests can assert
// that a program compiles, or that it does not. The list's safety
// property is a compile failure, so positive tests alone cannot cover it.
package compiletest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Errors loads the Go package rooted at dir and returns its build and type
// error messages. An empty slice means the package compiles.
func Errors(dir string) ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax,
		Dir: dir,
		Env: append(os.Environ(), "GOWORK=off"),
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", dir, err)
	}

	var msgs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs, nil
}

// AssertCompiles fails t if the package in dir has any error.
func AssertCompiles(t *testing.T, dir string) {
	t.Helper()
	msgs, err := Errors(dir)
	if err != nil {
		t.Fatalf("loading %s: %v", dir, err)
	}
	if len(msgs) > 0 {
		t.Fatalf("%s does not compile:\n  %s", dir, strings.Join(msgs, "\n  "))
	}
}

// AssertRejects fails t unless the package in dir has at least one error
// containing want.
func AssertRejects(t *testing.T, dir, want string) {
	t.Helper()
	msgs, err := Errors(dir)
	if err != nil {
		t.Fatalf("loading %s: %v", dir, err)
	}
	if len(msgs) == 0 {
		t.Fatalf("%s compiled, expected a type error containing %q", dir, want)
	}
	for _, m := range msgs {
		if strings.Contains(m, want) {
			return
		}
	}
	t.Fatalf("%s failed to compile, but no error contains %q:\n  %s",
		dir, want, strings.Join(msgs, "\n  "))
}
