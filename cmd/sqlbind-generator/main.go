// Package main provides the CLI entrypoint for sqlbind-generator.
//
// sqlbind-generator is a codegen tool that:
//   - Parses query definition files (YAML) with binding invocations
//   - Classifies each query's argument shape (direct/positional/named)
//   - Generates Go helpers that package method arguments for the binder
//   - Optionally cross-checks declarations against real Go signatures
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"sqlbind-generator/internal/analyze"
	"sqlbind-generator/internal/bind"
	"sqlbind-generator/internal/diagnostic"
	"sqlbind-generator/internal/gen"
	"sqlbind-generator/internal/parse"
	"sqlbind-generator/internal/queries"
)

func main() {
	var (
		queryFile = flag.String("queries", "queries.yaml", "query definition file")
		outputDir = flag.String("out", "./generated", "output directory")
		pkgName   = flag.String("pkg", "queries", "generated package name")
		validate  = flag.Bool("validate", false, "cross-check declared parameters against template references")
		checkPkg  = flag.String("check", "", "package pattern to cross-check query signatures against")
		debug     = flag.Bool("debug", false, "dump parsed invocations")
		upper     = flag.String("upper", "", "print the uppercase string literal for an identifier and exit")
	)
	flag.Parse()

	if *upper != "" {
		lit, err := gen.UppercaseLit(*upper)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sqlbind-generator:", err)
			os.Exit(1)
		}

		fmt.Println(lit)

		return
	}

	err := run(*queryFile, *outputDir, *pkgName, *validate, *checkPkg, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sqlbind-generator:", err)
		os.Exit(1)
	}
}

func run(queryFile, outputDir, pkgName string, validate bool, checkPkg string, debug bool) error {
	qf, err := queries.LoadFile(queryFile)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	var sigs analyze.Signatures
	if checkPkg != "" {
		sigs, err = analyze.LoadSignatures(checkPkg)
		if err != nil {
			return err
		}
	}

	for _, q := range qf.Queries {
		inv, err := parse.Parse(q.Bind)
		if err != nil {
			return fmt.Errorf("query %s: %w", q.Name, err)
		}

		if debug {
			spew.Dump(inv)
		}

		if validate {
			diags.Merge(bind.Validate(q.Name, inv))
		}

		if sigs != nil {
			diags.Merge(analyze.Check(sigs, q.Name, inv.Params))
		}
	}

	report(diags)
	if diags.HasErrors() {
		return diags.Error()
	}

	config := gen.DefaultGeneratorConfig()
	config.PackageName = pkgName
	config.OutputDir = outputDir

	generator := gen.NewGenerator(config)

	file, err := generator.Generate(fileStem(queryFile), qf)
	if err != nil {
		return err
	}

	err = gen.WriteFiles([]gen.GeneratedFile{*file}, config.OutputDir)
	if err != nil {
		return err
	}

	fmt.Println("wrote", filepath.Join(config.OutputDir, file.Filename))

	return nil
}

// report prints warnings and infos; errors are returned by run.
func report(diags diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	for _, i := range diags.Infos {
		fmt.Fprintln(os.Stderr, "info:", i.String())
	}
}

// fileStem derives the generated file stem from the query file name.
func fileStem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
