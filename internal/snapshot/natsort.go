package snapshot

import "sort"

// NaturalLess compares two names the way an operator reads them: alternating
// alphabetic and numeric runs, with numeric runs compared by value. Plain
// lexical order would put "Tun10" before "Tun2".
func NaturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			an, arest := numRun(a)
			bn, brest := numRun(b)
			if an != bn {
				return an < bn
			}
			a, b = arest, brest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

// SortNatural sorts names in place in natural order.
func SortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// numRun consumes the leading digit run and returns its value and the rest of
// the string. Runs longer than an uint64 saturate, which still orders them
// after any shorter run.
func numRun(s string) (uint64, string) {
	var n uint64
	i := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if n > (1<<64-1-d)/10 {
			n = 1<<64 - 1
			continue
		}
		n = n*10 + d
	}
	return n, s[i:]
}
