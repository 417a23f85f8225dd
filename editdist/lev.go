package editdist

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single element insertions, deletions, or substitutions that
// turn a into b.
//
// Only one row of the cost table is kept, sized by the shorter operand.
func Distance[T comparable](a, b []T) int {
	if len(a) < len(b) {
		a, b = b, a // Distance is symmetric
	}
	if len(b) == 0 {
		return len(a)
	}

	// row[j] = dist(a[:i], b[:j])
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j // First row
	}
	for i := 1; i < len(a)+1; i++ {
		diag := row[0] // dist(a[:i-1], b[:0])
		row[0] = i     // First col
		for j := 1; j < len(b)+1; j++ {
			sub := diag
			if a[i-1] != b[j-1] {
				sub += 1
			}
			del := row[j-1] + 1
			ins := row[j] + 1
			diag = row[j]
			row[j] = min(sub, del, ins)
		}
	}
	return row[len(b)]
}

// Levenshtein compares a and b as sequences of Unicode scalar values, so a
// multi-byte character counts as one unit.
func Levenshtein(a, b string) int {
	return Distance([]rune(a), []rune(b))
}

// Bytes compares a and b byte by byte.
func Bytes(a, b []byte) int {
	return Distance(a, b)
}
