// Package handrank implements the per-family hand-rank lookup tables of
// §4.C: built once at process start, read-only thereafter, mapping a
// canonical 5-card (or, for badugi, 1-4 card) fingerprint to a dense
// integer rank in [0, N). Smaller ranks are stronger by convention; the
// ace-to-five and badugi low tables are built best-low first, while
// deuce-to-seven low reuses the standard table with an inverted comparator
// (§4.C, §9).
package handrank

// Table is a built, read-only lookup for one hand family.
type Table struct {
	entries map[Fingerprint]int
	// byProduct is populated only for families where suits never affect
	// strength (ace-to-five low variants, badugi): "High-card-only
	// families have a second map keyed only by prime_product" (§4.C).
	byProduct map[int64]int
	n         int
	mphf      *perfectHash
}

// N returns the number of distinct dense ranks in the table, i.e. the
// table assigns ranks in [0, N).
func (t *Table) N() int { return t.n }

// Lookup resolves a fingerprint to its dense rank. ok is false if the
// fingerprint does not correspond to a legal hand for this family.
func (t *Table) Lookup(fp Fingerprint) (rank int, ok bool) {
	if t.mphf != nil {
		if idx, hit := t.mphf.find(fp); hit {
			// Verify against the authoritative map: a CHD slot is only
			// meaningful for keys it was built from, and collisions with
			// unseen keys are otherwise undetectable.
			if canonical, present := t.entries[fp]; present && canonical == idx {
				return idx, true
			}
		}
	}
	if t.byProduct != nil {
		if idx, present := t.byProduct[fp.Product]; present {
			return idx, true
		}
	}
	idx, present := t.entries[fp]
	return idx, present
}

// tableBuilder accumulates (fingerprint -> dense rank) entries in
// descending-strength order: the first entry added gets rank 0, the
// strongest possible hand in the family (§4.C "ranks are dense").
type tableBuilder struct {
	entries    map[Fingerprint]int
	byProduct  map[int64]int
	order      []Fingerprint
	trackByKey bool
}

func newTableBuilder(trackByProduct bool) *tableBuilder {
	tb := &tableBuilder{
		entries:    make(map[Fingerprint]int),
		trackByKey: trackByProduct,
	}
	if trackByProduct {
		tb.byProduct = make(map[int64]int)
	}
	return tb
}

// add registers fp as the next-weaker distinct hand value if it has not
// already been recorded (duplicate fingerprints, e.g. the same rank
// pattern reached by different suit assignments, share a rank).
func (tb *tableBuilder) add(fp Fingerprint) {
	if _, exists := tb.entries[fp]; exists {
		return
	}
	idx := len(tb.order)
	tb.entries[fp] = idx
	tb.order = append(tb.order, fp)
	if tb.trackByKey {
		if _, exists := tb.byProduct[fp.Product]; !exists {
			tb.byProduct[fp.Product] = idx
		}
	}
}

func (tb *tableBuilder) build() *Table {
	t := &Table{
		entries:   tb.entries,
		byProduct: tb.byProduct,
		n:         len(tb.order),
	}
	t.mphf = buildPerfectHash(tb.entries)
	return t
}
