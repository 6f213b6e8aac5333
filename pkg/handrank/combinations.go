package handrank

import "github.com/lox/pokerkit/pkg/card"

// combinations yields every k-length subsequence of items, each in the same
// relative order as items, via the callback f. It is used to enumerate
// rank-pattern combinations when building the per-family tables (§4.C).
func combinations(items []card.Rank, k int, f func(combo []card.Rank)) {
	n := len(items)
	if k > n || k < 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]card.Rank, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		f(combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// descending returns a copy of ranks sorted strongest (highest) first.
func descendingRanks(universe []card.Rank) []card.Rank {
	out := append([]card.Rank(nil), universe...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j] > out[i] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func without(universe []card.Rank, exclude ...card.Rank) []card.Rank {
	excl := map[card.Rank]bool{}
	for _, e := range exclude {
		excl[e] = true
	}
	var out []card.Rank
	for _, r := range universe {
		if !excl[r] {
			out = append(out, r)
		}
	}
	return out
}
