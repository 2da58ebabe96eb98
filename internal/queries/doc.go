// Package queries provides the YAML schema and loader for query
// definition files, the generator's input surface.
//
// # Schema overview
//
//	version: "1"
//	package: db
//	queries:
//	  - name: UpdateUserName
//	    bind: >-
//	      id name =>
//	      "UPDATE users SET name = " :name " WHERE id = " :id
//
// Each query carries one binding invocation. The declared parameter
// names before "=>" become the generated helper's arguments; the body
// mixes literal SQL with ":name" (by-value) and "#name" (by-reference)
// placeholders. Query names must be unique within a file.
package queries
