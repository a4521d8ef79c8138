package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces a raw class name to its normalized form: NFKC fold,
// trim, lower-case, hyphens and underscores unified to a single underscore
// separator, runs of whitespace collapsed. The result is stable under
// repeated application.
func Normalize(raw string) string {
	name := norm.NFKC.String(raw)
	name = strings.TrimSpace(cases.Lower(language.Und).String(name))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.Join(strings.Fields(name), " ")
	return strings.ReplaceAll(name, " ", "_")
}

// Aliases resolves normalized class names against a table of accepted
// variants. The zero value resolves nothing; construct with NewAliases.
type Aliases struct {
	byVariant map[string]string
}

// NewAliases builds an alias table from canonical name to accepted variant
// spellings. Keys and variants are normalized on construction so lookups
// stay consistent with Canonicalize output; every canonical name also
// resolves to itself.
func NewAliases(groups map[string][]string) Aliases {
	byVariant := make(map[string]string, len(groups)*2)
	for canonical, variants := range groups {
		key := Normalize(canonical)
		if key == "" {
			continue
		}
		byVariant[key] = key
		for _, variant := range variants {
			v := Normalize(variant)
			if v == "" {
				continue
			}
			byVariant[v] = key
		}
	}
	return Aliases{byVariant: byVariant}
}

// Canonicalize maps a raw class name to its canonical token. Every input
// produces an output; names without an alias entry pass through in
// normalized form.
func (a Aliases) Canonicalize(raw string) string {
	name := Normalize(raw)
	if canonical, ok := a.byVariant[name]; ok {
		return canonical
	}
	return name
}

// Groups returns the alias table as canonical name to sorted variants,
// suitable for display. Self-mappings are omitted.
func (a Aliases) Groups() map[string][]string {
	groups := make(map[string][]string)
	for variant, canonical := range a.byVariant {
		if variant == canonical {
			continue
		}
		groups[canonical] = append(groups[canonical], variant)
	}
	return groups
}
