package linebreak

// classRange maps an inclusive scalar range to its Line_Break class.
// The generated table in tables.go is sorted by lo and non-overlapping.
type classRange struct {
	lo, hi rune
	class  Class
}

// ClassFor returns the raw Line_Break class of a scalar, as declared in
// the Unicode data, with XX for anything unlisted. Scalars outside
// [0, 0x10FFFF] also report XX.
func ClassFor(r rune) Class {
	// ASCII fast path: letters and digits dominate real text.
	if 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' {
		return AL
	}
	if '0' <= r && r <= '9' {
		return NU
	}

	lo, hi := 0, len(lineBreakRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		cr := lineBreakRanges[mid]
		switch {
		case r < cr.lo:
			hi = mid
		case r > cr.hi:
			lo = mid + 1
		default:
			return cr.class
		}
	}
	return XX
}
