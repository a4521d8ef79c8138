package taxonomy

// BuildRemap canonicalizes an ordered raw taxonomy and assigns new indices.
// The returned remap is total over the input: remap[oldIndex] is the new
// index of that class. Duplicate canonical names collapse onto the index of
// their first occurrence, so the canonical taxonomy has no duplicates and
// new indices form the dense range [0, len(canonical)).
func BuildRemap(rawNames []string, aliases Aliases) (canonical []string, remap []int) {
	seen := make(map[string]int, len(rawNames))
	remap = make([]int, len(rawNames))
	for oldIdx, raw := range rawNames {
		name := aliases.Canonicalize(raw)
		newIdx, ok := seen[name]
		if !ok {
			newIdx = len(canonical)
			seen[name] = newIdx
			canonical = append(canonical, name)
		}
		remap[oldIdx] = newIdx
	}
	return canonical, remap
}
