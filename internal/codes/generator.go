// internal/codes/generator.go
package codes

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/odnamta/agency-service/internal/models"
)

// Code generation is deliberately stateless: the caller passes the list
// of codes already in use (usually queried from the store) and owns the
// accumulation. Every function here is a pure function of its inputs
// and never mutates the existing slice.

const minCodeLen = 3

// Fallback prefixes for names that compact down to nothing, e.g. an
// all-whitespace or all-punctuation name. The collision loop below
// still guarantees uniqueness on top of these.
const (
	fallbackLine     = "LIN"
	fallbackAgent    = "AGT"
	fallbackProvider = "PRV"
)

// GenerateShippingLineCode derives a short unique code for a carrier
// from its display name. The result is at least 3 characters and is
// guaranteed not to be a member of existing.
func GenerateShippingLineCode(name string, existing []string) string {
	base := baseFromName(name, 4)
	if base == "" {
		base = fallbackLine
	}
	return ensureUnique(base, existing)
}

// GenerateAgentCode derives a unique code for a port agent. The port
// code is folded into the base so that same-named agents at different
// ports get distinguishable codes before the numeric suffix is needed.
func GenerateAgentCode(name, portCode string, existing []string) string {
	base := baseFromName(name, 3)
	if base == "" {
		base = fallbackAgent
	}
	if port := clip(compact(portCode), 3); port != "" {
		base = base + "-" + port
	}
	return ensureUnique(base, existing)
}

// GenerateProviderCode derives a unique code for a service provider,
// using the provider type as the secondary discriminator.
func GenerateProviderCode(name string, providerType models.ProviderType, existing []string) string {
	base := baseFromName(name, 3)
	if base == "" {
		base = fallbackProvider
	}
	if t := clip(compact(string(providerType)), 3); t != "" {
		base = base + "-" + t
	}
	return ensureUnique(base, existing)
}

// baseFromName builds the deterministic base: word initials when the
// name has enough words, otherwise a prefix of the compacted name.
// Returns "" for degenerate names so callers can substitute a fallback.
func baseFromName(name string, width int) string {
	words := strings.Fields(name)
	if len(words) >= minCodeLen {
		var b strings.Builder
		for _, w := range words {
			if b.Len() == width {
				break
			}
			for _, r := range w {
				if unicode.IsLetter(r) || unicode.IsDigit(r) {
					b.WriteRune(unicode.ToUpper(r))
					break
				}
			}
		}
		if b.Len() >= minCodeLen {
			return b.String()
		}
	}
	return clip(compact(name), width)
}

// compact strips a string down to its uppercase letters and digits.
func compact(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// clip returns at most width characters of s, but never fewer than
// minCodeLen when s is long enough to provide them.
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

// ensureUnique returns base when it is free, otherwise base plus the
// smallest numeric suffix that avoids every entry in existing. The
// suffix space is unbounded so this always terminates.
func ensureUnique(base string, existing []string) string {
	// Pad short bases up to the minimum before checking collisions,
	// so even fallback-free degenerate input keeps the length contract.
	for len(base) < minCodeLen {
		base += "X"
	}
	used := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		used[c] = struct{}{}
	}
	if _, taken := used[base]; !taken {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + strconv.Itoa(n)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}
