package state

import "github.com/lox/pokerkit/pkg/chip"

// recalculateSidePots rebuilds s.Pots from each seat's total contribution
// so far, layering a side pot at every distinct all-in level (§4.F "Chips
// pushing": "side pots form at each distinct all-in amount"). Folded
// players still contribute their chips to whichever layers their
// contribution reaches, but are not eligible to win any of them.
func (s *State) recalculateSidePots() {
	zero := zeroLike(s.Contributed[0])
	levels := distinctAllInLevels(s.Contributed, s.Statuses)
	if len(levels) == 0 {
		total := zero
		for _, c := range s.Contributed {
			total = total.Add(c)
		}
		s.Pots = []Pot{{Amount: total, Eligible: activeSeats(s.Statuses)}}
		return
	}

	var pots []Pot
	previous := zero

	for _, level := range levels {
		pot := Pot{Amount: zero}
		for seat, c := range s.Contributed {
			contribution := clamp(c.Sub(previous), zero, level.Sub(previous))
			if contribution.IsZero() {
				continue
			}
			pot.Amount = pot.Amount.Add(contribution)
			if s.Statuses[seat] != StatusFolded && !c.Less(previous) {
				pot.Eligible = append(pot.Eligible, seat)
			}
		}
		if !pot.Amount.IsZero() && len(pot.Eligible) > 0 {
			pots = append(pots, pot)
		}
		previous = level
	}

	// Remainder above the highest all-in level: everyone still
	// contributing above that level shares it (§4.F).
	top := Pot{Amount: zero}
	for seat, c := range s.Contributed {
		contribution := c.Sub(previous)
		if contribution.Less(zero) {
			continue
		}
		top.Amount = top.Amount.Add(contribution)
		if s.Statuses[seat] != StatusFolded && previous.Less(c) {
			top.Eligible = append(top.Eligible, seat)
		}
	}
	if !top.Amount.IsZero() && len(top.Eligible) > 0 {
		pots = append(pots, top)
	}

	if len(pots) == 0 {
		pots = []Pot{{Amount: zero, Eligible: activeSeats(s.Statuses)}}
	}
	s.Pots = pots
}

func clamp(v, lo, hi chip.Number) chip.Number {
	if v.Less(lo) {
		return lo
	}
	if hi.Less(v) {
		return hi
	}
	return v
}

func activeSeats(statuses []PlayerStatus) []int {
	var out []int
	for i, st := range statuses {
		if st != StatusFolded {
			out = append(out, i)
		}
	}
	return out
}

// distinctAllInLevels returns the sorted, deduplicated contribution
// amounts of every all-in player, ascending.
func distinctAllInLevels(contributed []chip.Number, statuses []PlayerStatus) []chip.Number {
	var levels []chip.Number
	for i, st := range statuses {
		if st != StatusAllIn {
			continue
		}
		dup := false
		for _, l := range levels {
			if l.Equal(contributed[i]) {
				dup = true
				break
			}
		}
		if !dup {
			levels = append(levels, contributed[i])
		}
	}
	for i := 0; i < len(levels); i++ {
		for j := i + 1; j < len(levels); j++ {
			if levels[j].Less(levels[i]) {
				levels[i], levels[j] = levels[j], levels[i]
			}
		}
	}
	return levels
}
