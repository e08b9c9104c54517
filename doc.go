// Package domid builds, validates and parses structured element identifiers
// such as "tab-43" or "a-b-3-c-1343".
//
// An identifier is one or more components joined by '-'. A component is a
// string of ASCII letters, digits, ':' and '.', or an unsigned number. The
// first character of an identifier must be a letter, so the first component
// can never be numeric.
//
// Templates describe identifier shapes. Fixed slots must match exactly;
// wildcard slots are filled from parameters when building and returned when
// extracting:
//
//	row := domid.MustTemplate("project", "row", nil)
//	id, err := domid.BuildFromTemplate(row, 32)   // "project-row-32"
//	n, err := domid.ExtractLastUint(row, id)      // 32
//	ok := domid.Matches(row, "project-row-7")     // true
//
// Errors are Issues (see errors.go). Use errors.Is with ErrFormat, ErrType or
// ErrParse to classify them, or AsIssues to inspect codes and parameters.
//
// Layout:
// - Codec implementations live under codec/, named template catalogs under
//   catalog/, messages under i18n/, and the CLI under cmd/domid.
package domid
