package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"sqlbind-generator/internal/bind"
	"sqlbind-generator/internal/common"
	"sqlbind-generator/internal/parse"
	"sqlbind-generator/internal/queries"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. A "package"
	// entry in the query file takes precedence.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables generation of explanatory comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "queries",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator generates Go binding helpers from a query file.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "userstore_sqlbind.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one Go file with a statement constant and an
// argument-packaging helper per query. The name argument becomes the
// file stem (e.g., "userstore" -> "userstore_sqlbind.go").
func (g *Generator) Generate(name string, qf *queries.File) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(name, qf)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = fileTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", name, err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the generated file template.
type templateData struct {
	PackageName      string
	Filename         string
	NeedsSQL         bool
	GenerateComments bool
	Queries          []queryData
}

// queryData represents one query in the generated file.
type queryData struct {
	Name   string
	Shape  string
	Params string // e.g. "id, name any"
	Expr   string
	SQLLit string
}

// buildTemplateData parses every query and renders its pieces.
func (g *Generator) buildTemplateData(name string, qf *queries.File) (*templateData, error) {
	pkg := qf.Package
	if pkg == "" {
		pkg = g.config.PackageName
	}

	data := &templateData{
		PackageName:      pkg,
		Filename:         name + "_sqlbind.go",
		GenerateComments: g.config.GenerateComments,
	}

	for _, q := range qf.Queries {
		inv, err := parse.Parse(q.Bind)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Name, err)
		}

		if common.IsEmpty(inv.Params) {
			return nil, fmt.Errorf("query %s declares no parameters", q.Name)
		}

		shape := bind.Decide(inv.Params, inv.Refs())
		if shape == bind.ShapeNamed {
			data.NeedsSQL = true
		}

		data.Queries = append(data.Queries, queryData{
			Name:   q.Name,
			Shape:  shape.String(),
			Params: strings.Join(inv.Params, ", ") + " any",
			Expr:   Expr(inv),
			SQLLit: strconv.Quote(inv.SQLText()),
		})
	}

	return data, nil
}

// WriteFiles writes generated files into outputDir, creating the
// directory as needed. Existing files with the same name are
// overwritten: generated output carries no hand edits, so regeneration
// always wins.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Template for the generated binding file

var fileTemplate = template.Must(template.New("sqlbind").Parse(`// Code generated by sqlbind-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .NeedsSQL}}
import (
	"database/sql"
)
{{end}}
{{range .Queries}}
{{if $.GenerateComments}}// {{.Name}}SQL is the statement bound by {{.Name}}Args ({{.Shape}} shape).
{{end}}const {{.Name}}SQL = {{.SQLLit}}

{{if $.GenerateComments}}// {{.Name}}Args packages the arguments of {{.Name}} for binding.
{{end}}func {{.Name}}Args({{.Params}}) any {
	return {{.Expr}}
}
{{end}}`))
