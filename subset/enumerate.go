package subset

import (
	"iter"
	"slices"
)

// All yields every subset of parent with exactly k elements that contains source.
//
// The recursion walks parent \ {source} lowest position first. For each
// candidate it first assumes the candidate is included (one fewer element still
// needed), then assumes it is excluded (same need, one fewer candidate). A
// branch is entered only when the remaining candidates can still supply the
// elements it needs, so no call is wasted on an unreachable size.
//
// The include and exclude branches differ in the candidate they fixed, hence
// the emitted subsets are pairwise distinct.
//
// Nothing is yielded when source ∉ parent, k < 1 or k > |parent|.
func All(k int, parent Set, source int) iter.Seq[Set] {
	return func(yield func(Set) bool) {
		if !parent.Contains(source) || k < 1 || k > parent.Len() {
			return
		}
		walk(parent.Remove(source), k-1, Of(source), yield)
	}
}

// walk emits acc ∪ T for every T ⊆ rest with |T| == need.
// Precondition: rest.Len() >= need. It returns false once yield asks to stop.
func walk(rest Set, need int, acc Set, yield func(Set) bool) bool {
	if need == 0 {
		return yield(acc)
	}
	if rest.Len() == need {
		return yield(acc | rest)
	}

	p := rest.Lowest()
	tail := rest.Remove(p)

	// include p: tail.Len() == rest.Len()-1 >= need-1 holds because rest.Len() > need.
	if !walk(tail, need-1, acc.Add(p), yield) {
		return false
	}
	// exclude p
	if tail.Len() >= need {
		return walk(tail, need, acc, yield)
	}

	return true
}

// Enumerate collects All(k, parent, source) into a slice.
func Enumerate(k int, parent Set, source int) []Set {
	return slices.Collect(All(k, parent, source))
}

// Count returns how many subsets All(k, parent, source) yields when
// source ∈ parent: C(|parent|−1, k−1). It returns 0 for out-of-range k.
func Count(k int, parent Set) uint64 {
	n := parent.Len() - 1
	r := k - 1
	if r < 0 || r > n {
		return 0
	}

	return binomial(n, r)
}

// binomial returns C(n, r) for 0 ≤ r ≤ n ≤ 64 without intermediate overflow
// for the sizes a Set can hold.
func binomial(n, r int) uint64 {
	if r > n-r {
		r = n - r
	}
	c := uint64(1)
	for i := 1; i <= r; i++ {
		// c*(n-r+i) is divisible by i; split to keep the product small.
		num := uint64(n - r + i)
		g := gcd(c, uint64(i))
		c = (c / g) * (num / (uint64(i) / g))
	}

	return c
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
