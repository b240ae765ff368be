package subset

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxPositions is the number of positions a Set can hold.
const MaxPositions = 64

// Set is a set of positions 0…63 stored as a bitmask.
type Set uint64

// Of returns the set holding the given positions.
// Positions outside [0, MaxPositions) are ignored.
func Of(positions ...int) Set {
	var s Set
	for _, p := range positions {
		s = s.Add(p)
	}

	return s
}

// Full returns {0, 1, …, n−1}.
func Full(n int) Set {
	if n >= MaxPositions {
		return ^Set(0)
	}
	if n <= 0 {
		return 0
	}

	return Set(1)<<n - 1
}

// Add returns s ∪ {p}.
func (s Set) Add(p int) Set {
	if p < 0 || p >= MaxPositions {
		return s
	}

	return s | 1<<p
}

// Remove returns s \ {p}.
func (s Set) Remove(p int) Set {
	if p < 0 || p >= MaxPositions {
		return s
	}

	return s &^ (1 << p)
}

// Contains reports whether p ∈ s.
func (s Set) Contains(p int) bool {
	return p >= 0 && p < MaxPositions && s&(1<<p) != 0
}

// Len returns |s|.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Difference returns s \ o.
func (s Set) Difference(o Set) Set { return s &^ o }

// Lowest returns the smallest position in s, or -1 when s is empty.
func (s Set) Lowest() int {
	if s == 0 {
		return -1
	}

	return bits.TrailingZeros64(uint64(s))
}

// Members returns the positions of s in increasing order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for rest := s; rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(uint64(rest)))
	}

	return out
}

// String renders s as {a,b,c}.
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range s.Members() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte('}')

	return sb.String()
}
