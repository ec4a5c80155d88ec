package pattern

import "sort"

// IDSet is a sorted, duplicate-free sequence of numeric ids. It is used for
// the five side-condition sets carried by a MetaVar. Because the sequence is
// kept canonical (sorted, deduplicated) at construction time, set equality
// reduces to slice equality.
type IDSet []uint32

// NewIDSet builds a canonical IDSet from an arbitrary id list.
func NewIDSet(ids ...uint32) IDSet {
	if len(ids) == 0 {
		return nil
	}
	cp := append(IDSet(nil), ids...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	var last uint32
	haveLast := false
	for _, id := range cp {
		if haveLast && id == last {
			continue
		}
		out = append(out, id)
		last, haveLast = id, true
	}
	return out
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id uint32) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= id })
	return i < len(s) && s[i] == id
}

// Equal reports set equality. Both sets must be canonical (see NewIDSet).
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
