package optsearch

import "regexp"

// fragmentScrub strips every character a symbol name cannot contain.
var fragmentScrub = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeFragment converts a URL fragment into an exact-match search term.
// All characters outside [A-Za-z0-9_] are stripped and the remainder is
// anchored with ^...$ so a deep link matches exactly one symbol name.
// A fragment that becomes empty after stripping returns "" ("no search").
func SanitizeFragment(fragment string) string {
	cleaned := fragmentScrub.ReplaceAllString(fragment, "")
	if cleaned == "" {
		return ""
	}
	return "^" + cleaned + "$"
}
