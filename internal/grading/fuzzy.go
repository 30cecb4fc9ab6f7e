package grading

import (
	"math"
	"sort"
	"strings"
)

// TokenSetRatio scores the similarity of two whitespace-tokenised strings
// from 0 to 100, ignoring token order and repetition. When one token set
// contains the other the score is 100. Otherwise it is the best normalized
// Indel similarity among the shared tokens joined with each side's
// remainder, and the two remainders compared with each other.
func TokenSetRatio(a, b string) int {
	return int(math.Round(tokenSetRatio(a, b)))
}

func tokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var sect, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			sect = append(sect, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	if len(sect) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	sectStr := joinSorted(sect)
	diffA := joinSorted(onlyA)
	diffB := joinSorted(onlyB)

	sectLen := runeLen(sectStr)
	sep := 0
	if sectLen > 0 {
		sep = 1
	}
	sectALen := sectLen + sep + runeLen(diffA)
	sectBLen := sectLen + sep + runeLen(diffB)

	// The shared prefix cancels out, so comparing the remainders is the same
	// as comparing "sect diffA" with "sect diffB".
	best := normalizedSimilarity(indelDistance(diffA, diffB), sectALen+sectBLen)
	if sectLen == 0 {
		return best
	}

	best = math.Max(best, normalizedSimilarity(sep+runeLen(diffA), sectLen+sectALen))
	best = math.Max(best, normalizedSimilarity(sep+runeLen(diffB), sectLen+sectBLen))
	return best
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func joinSorted(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func runeLen(s string) int {
	return len([]rune(s))
}

func normalizedSimilarity(dist, lenSum int) float64 {
	if lenSum == 0 {
		return 100
	}
	return 100 * (1 - float64(dist)/float64(lenSum))
}

// indelDistance is the number of insertions and deletions turning a into b.
func indelDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return len(ra) + len(rb) - 2*lcsLength(ra, rb)
}

func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
