package validation

import "regexp"

// notSpaceOrAt matches one character that is neither "@" nor whitespace as
// ECMAScript defines it: ASCII whitespace, vertical tab, the Unicode space
// separators (Zs, Zl, Zp) and the byte order mark.
const notSpaceOrAt = `[^\s\x0B\p{Z}\x{FEFF}@]`

var emailRegex = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// IsValidEmail reports whether s has the shape local-part@domain with no
// whitespace, exactly one "@" and at least one "." after it.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}
