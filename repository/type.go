package repository

// NullUint32 ...
type NullUint32 struct {
	Valid bool
	Num   uint32
}

// HashRange is the half-open range [Begin, End) of the hash column, no End means up to the max value
type HashRange struct {
	Begin uint32
	End   NullUint32
}

// Contains ...
func (r HashRange) Contains(hash uint32) bool {
	if hash < r.Begin {
		return false
	}
	if r.End.Valid && hash >= r.End.Num {
		return false
	}
	return true
}

// SplitHashRange splits the whole hash space into n ranges
func SplitHashRange(n int) []HashRange {
	if n <= 1 {
		return []HashRange{{}}
	}
	step := uint64(1<<32) / uint64(n)

	result := make([]HashRange, 0, n)
	for i := 0; i < n; i++ {
		r := HashRange{Begin: uint32(uint64(i) * step)}
		if i < n-1 {
			r.End = NullUint32{Valid: true, Num: uint32(uint64(i+1) * step)}
		}
		result = append(result, r)
	}
	return result
}
