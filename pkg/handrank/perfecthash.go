package handrank

import (
	"encoding/binary"

	"github.com/opencoff/go-chd"
)

// perfectHash compresses a fixed, read-only fingerprint->index map into a
// minimal perfect hash once at build time (§4.C, §5 "Lookups are built
// once and then read-only"). It is an optimization layered on top of the
// authoritative Go map kept in Table.entries. A CHD only guarantees a slot
// for keys it was built from, so find does not reject unknown keys itself;
// Table.Lookup confirms every hit against Table.entries.
type perfectHash struct {
	mphf *chd.CHD
	keys [][]byte
	vals []int
}

func encodeKey(fp Fingerprint) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(fp.Product))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(fp.Aux)))
	return buf
}

// buildPerfectHash freezes entries (fingerprint -> dense rank) into a CHD.
// It returns nil if the underlying builder reports an error building the
// displacement table for this key set; callers then fall back to the plain
// map, which always remains correct.
func buildPerfectHash(entries map[Fingerprint]int) *perfectHash {
	keys := make([][]byte, 0, len(entries))
	vals := make([]int, 0, len(entries))
	for fp, idx := range entries {
		keys = append(keys, encodeKey(fp))
		vals = append(vals, idx)
	}

	builder, err := chd.NewBuilder(keys)
	if err != nil {
		return nil
	}
	mphf, err := builder.Build(0)
	if err != nil {
		return nil
	}

	// Re-order vals so position i in the CHD's mapping corresponds to
	// keys[i] regardless of map iteration order.
	ordered := make([]int, len(keys))
	for i, k := range keys {
		slot := mphf.Find(k)
		if int(slot) >= len(ordered) {
			return nil
		}
		ordered[slot] = vals[i]
	}

	return &perfectHash{mphf: mphf, keys: keys, vals: ordered}
}

// find looks up fp, returning (index, true) whenever the CHD maps it to an
// in-range slot; the hit is not checked against the stored keys.
func (p *perfectHash) find(fp Fingerprint) (int, bool) {
	if p == nil {
		return 0, false
	}
	key := encodeKey(fp)
	slot := p.mphf.Find(key)
	if int(slot) < 0 || int(slot) >= len(p.vals) {
		return 0, false
	}
	return p.vals[slot], true
}
