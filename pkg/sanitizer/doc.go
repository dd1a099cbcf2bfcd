// Package sanitizer provides string transforms that clean input before it is
// validated and frozen. Every function is pure and can be chained with Apply
// or Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseSpace, sanitizer.Truncate(64))
//	clean("  John   Doe ") // "John Doe"
//
// blueprint.Sanitize runs these transforms as part of a schema.
package sanitizer
