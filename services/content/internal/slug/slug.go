// Package slug derives URL-safe post identifiers from titles.
package slug

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9 -]`)
	spaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Generate lower-cases title, drops everything outside [a-z0-9 -], turns
// space runs into a single hyphen and trims hyphens from both ends.
// The result may be empty.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = disallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = spaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EnsureUnique returns base when it is not taken, otherwise base-2, base-3, ...
// up to the first free suffix. It does not guard against concurrent writers;
// callers rely on the unique index on posts.slug for that.
func EnsureUnique(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// Fallback is used when a title has no retainable characters.
func Fallback() string {
	return "post-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Resolve combines Generate, Fallback and EnsureUnique.
func Resolve(title string, existing []string) string {
	base := Generate(title)
	if base == "" {
		base = Fallback()
	}
	return EnsureUnique(base, existing)
}
