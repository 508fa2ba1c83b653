package domain

// SegmentKind tags one piece of a name diff.
type SegmentKind int

const (
	SegmentSame SegmentKind = iota
	SegmentRemoved
	SegmentAdded
)

// Segment is a run of characters with a single diff classification.
type Segment struct {
	Text string
	Kind SegmentKind
}

// DiffNames computes a character-level diff between an original filename
// and its target using the longest common subsequence. The result is one
// merged segment sequence: Same segments appear in both names, Removed
// segments only in the original, Added segments only in the target.
func DiffNames(original, target string) []Segment {
	if original == target {
		if original == "" {
			return nil
		}
		return []Segment{{Text: original, Kind: SegmentSame}}
	}

	a := []rune(original)
	b := []rune(target)
	table := lcsTable(a, b)

	// Backtrack from the full lengths, collecting segments in reverse.
	var segs []Segment
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			segs = prependRune(segs, a[i-1], SegmentSame)
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			segs = prependRune(segs, b[j-1], SegmentAdded)
			j--
		default:
			segs = prependRune(segs, a[i-1], SegmentRemoved)
			i--
		}
	}
	return segs
}

// prependRune grows the segment list backwards, merging runs of the same
// kind. The backtrack walks from the end of both strings, so each rune
// belongs in front of everything collected so far.
func prependRune(segs []Segment, r rune, kind SegmentKind) []Segment {
	if len(segs) > 0 && segs[0].Kind == kind {
		segs[0].Text = string(r) + segs[0].Text
		return segs
	}
	return append([]Segment{{Text: string(r), Kind: kind}}, segs...)
}

func lcsTable(a, b []rune) [][]int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}
