package layout

import "strings"

// RowLabel returns the label for a zero-based row index: the layout's
// explicit label when supplied, otherwise the alphabetic sequence
// A..Z, AA, AB, ...
func RowLabel(labels []string, i int) string {
	if i >= 0 && i < len(labels) {
		if lbl := strings.TrimSpace(labels[i]); lbl != "" {
			return lbl
		}
	}
	return indexToRowLabel(i)
}

// indexToRowLabel converts a zero-based index to an alphabetical row
// label like A, B, AA.
func indexToRowLabel(i int) string {
	if i < 0 {
		return ""
	}
	res := []rune{}
	for {
		rem := i % 26
		res = append(res, rune('A'+rem))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 {
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// RowLabelIndex converts a row label like A or AA into its zero-based
// index. The second return is false for labels outside ASCII A-Z.
func RowLabelIndex(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if s == "" {
		return -1, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'A' || ch > 'Z' {
			return -1, false
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n - 1, true
}
