package analyze

import (
	"fmt"
	"slices"

	"sqlbind-generator/internal/diagnostic"
)

// Check compares a query's declared parameters against the like-named
// function in the loaded signatures. A missing function is a warning
// (the query may be consumed elsewhere); a parameter-name mismatch is
// an error, since the generated helper would not line up with the
// method it serves.
func Check(sigs Signatures, query string, declared []string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	got, ok := sigs[query]
	if !ok {
		diags.AddWarning("func_missing",
			"no exported function matches this query name", query, -1)

		return diags
	}

	if !slices.Equal(got, declared) {
		diags.AddError("params_mismatch",
			fmt.Sprintf("declared parameters %v do not match function parameters %v", declared, got),
			query, -1)
	}

	return diags
}
