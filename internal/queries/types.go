package queries

// File is a parsed query definition file.
type File struct {
	// Version is the schema version. Defaults to "1".
	Version string `yaml:"version"`
	// Package overrides the generated package name (optional).
	Package string `yaml:"package,omitempty"`
	// Queries are the query definitions, in file order.
	Queries []Query `yaml:"queries"`
}

// Query is one named query definition.
type Query struct {
	// Name is the method name the binding helper is generated for.
	Name string `yaml:"name"`
	// Bind is the binding invocation: declared parameter names, "=>",
	// then literal SQL fragments interleaved with ":name" (by-value)
	// and "#name" (by-reference) placeholders. For example:
	//
	//	id name => "UPDATE users SET name = " :name " WHERE id = " :id
	Bind string `yaml:"bind"`
}
