package classifier

import "github.com/agnivade/levenshtein"

// similarity returns a normalized edit-distance ratio in [0,1].
// 1 means identical strings, 0 means nothing in common.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
