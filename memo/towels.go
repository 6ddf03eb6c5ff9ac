package memo

// CanCompose reports whether design can be written as a concatenation of
// patterns, each usable any number of times. The empty design is trivially
// composable.
func CanCompose(patterns []string, design string) bool {
	t := NewTable[int, bool]()
	var from func(i int) bool
	from = func(i int) bool {
		if i == len(design) {
			return true
		}
		if ok, seen := t.Get(i); seen {
			return ok
		}
		ok := false
		for _, p := range patterns {
			if p != "" && hasPrefixAt(design, i, p) && from(i+len(p)) {
				ok = true
				break
			}
		}
		t.Put(i, ok)
		return ok
	}
	return from(0)
}

// Arrangements returns the number of distinct pattern sequences that
// concatenate to design. Empty and repeated patterns are ignored.
func Arrangements(patterns []string, design string) int {
	patterns = distinct(patterns)
	t := NewTable[int, int]()
	ways := Memoize(t, func(self func(int) int, i int) int {
		if i == len(design) {
			return 1
		}
		n := 0
		for _, p := range patterns {
			if hasPrefixAt(design, i, p) {
				n += self(i + len(p))
			}
		}
		return n
	})
	return ways(0)
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return len(s)-i >= len(prefix) && s[i:i+len(prefix)] == prefix
}

// distinct drops empty and repeated patterns, keeping first occurrences.
func distinct(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
