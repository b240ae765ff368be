// Package subset enumerates fixed-size subsets of a small index set that all
// contain a distinguished source element.
//
// Sets are bitmasks (one bit per position, positions 0…63), so the include and
// exclude branches of the enumeration share nothing and copy nothing: every
// branch works on its own value. Membership, union and difference are single
// word operations.
//
// Enumeration order is deterministic: candidates are taken lowest position
// first, and the include branch is explored before the exclude branch.
//
// Complexity: All(k, parent, s) yields C(|parent|−1, k−1) subsets in
// O(C(|parent|−1, k−1) + |parent|·k) time; branches that cannot reach size k
// are pruned before they are entered.
package subset
