// Package analyze provides the optional signature check.
//
// It uses golang.org/x/tools/go/packages with go/types to extract the
// parameter names of exported functions in a target package, so query
// declarations can be cross-checked against the real Go methods they
// generate bindings for.
package analyze
