package cv

import "strings"

// CapitalizeWords upper-cases the first letter of every whitespace-separated
// word and lower-cases the rest ("ana gomez" -> "Ana Gomez"). Acronyms are
// flattened like any other word ("ACME S.A." -> "Acme S.a."), matching the
// title-case behavior the form has always had. Applied at render time to
// names, employers, roles, institutions and degrees; the stored submission
// keeps the raw input untouched.
func CapitalizeWords(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return strings.TrimSpace(s)
	}
	for i, word := range fields {
		runes := []rune(strings.ToLower(word))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
