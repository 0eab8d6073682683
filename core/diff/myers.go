package diff

import "slices"

type opKind int

const (
	opEqual opKind = iota
	opDelete
	opInsert
)

// edit is one step of an edit script. index is in the old sequence for deletes and in
// the new sequence for inserts and equal runs.
type edit struct {
	op    opKind
	index int
}

// script returns a shortest edit script from a to b in forward order.
func script[K comparable](a, b []K) []edit {
	n, m := len(a), len(b)
	limit := n + m
	if limit == 0 {
		return nil
	}

	offset := limit
	v := make([]int, 2*limit+2)
	var trace [][]int

search:
	for d := 0; d <= limit; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				break search
			}
		}
	}

	edits := make([]edit, 0, limit)
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			edits = append(edits, edit{op: opEqual, index: y})
		}
		if d > 0 {
			if x == prevX {
				edits = append(edits, edit{op: opInsert, index: y - 1})
			} else {
				edits = append(edits, edit{op: opDelete, index: x - 1})
			}
		}
		x, y = prevX, prevY
	}

	slices.Reverse(edits)
	return edits
}
