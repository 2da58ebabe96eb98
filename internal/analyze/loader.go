package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName | packages.NeedTypes

// Signatures maps exported function names to their parameter names,
// in signature order.
type Signatures map[string][]string

// LoadSignatures loads the given package patterns and extracts the
// parameter names of every exported package-level function. Patterns are
// standard Go package patterns (e.g., "./db", "sqlbind-generator/examples/userstore").
func LoadSignatures(patterns ...string) (Signatures, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	sigs := make(Signatures)
	for _, pkg := range pkgs {
		collectFuncs(pkg, sigs)
	}

	return sigs, nil
}

// collectFuncs extracts parameter names from a loaded package.
func collectFuncs(pkg *packages.Package, sigs Signatures) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		fn, ok := obj.(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		params := make([]string, 0, sig.Params().Len())
		for i := 0; i < sig.Params().Len(); i++ {
			params = append(params, sig.Params().At(i).Name())
		}

		sigs[name] = params
	}
}
