package bind

import (
	"fmt"
	"slices"

	"sqlbind-generator/internal/diagnostic"
	"sqlbind-generator/internal/parse"
)

// Validate cross-checks the declared parameters against the template
// references of one invocation. The mapping decision itself never needs
// this: unreferenced or undeclared names surface later as ordinary
// compile errors in the generated code. Running the pass reports them
// early, at the offending offset.
//
// A declared parameter the template never references is a warning (the
// named shape still binds it). A template reference that matches no
// declared parameter is an error.
func Validate(query string, inv *parse.Invocation) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	refs := inv.Refs()
	for _, p := range inv.Params {
		if !slices.Contains(refs, p) {
			diags.AddWarning("param_unreferenced",
				fmt.Sprintf("parameter %q is never referenced by the template", p),
				query, -1)
		}
	}

	for _, seg := range inv.Segments {
		if seg.Kind != parse.SegmentPlaceholder {
			continue
		}

		if !slices.Contains(inv.Params, seg.Name) {
			diags.AddError("ref_undeclared",
				fmt.Sprintf("template references %q, which is not a declared parameter", seg.Name),
				query, seg.Offset)
		}
	}

	return diags
}
