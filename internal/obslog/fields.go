package obslog

import "sort"

// sortedFieldKeys returns fields' keys in sorted order so structured log
// lines have a deterministic field order instead of depending on Go's
// randomized map iteration.
func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
