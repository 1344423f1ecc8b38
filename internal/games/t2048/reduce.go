package t2048

// ReduceLine merges one line already oriented toward the move direction.
//
// tiles holds the occupied values in travel order. Adjacent equal values merge
// once each in a single left-to-right pass, so [2 2 2 2] becomes [4 4] and
// never [8]. The result is compacted and padded with zeros to length n.
// gained is the sum of all merge results.
func ReduceLine(tiles []int, n int) (line []int, gained int) {
	work := make([]int, 0, len(tiles))
	for _, v := range tiles {
		if v != 0 {
			work = append(work, v)
		}
	}

	for i := 0; i < len(work)-1; i++ {
		if work[i] == work[i+1] {
			work[i] *= 2
			work[i+1] = 0
			gained += work[i]
		}
	}

	line = make([]int, n)
	w := 0
	for _, v := range work {
		if v == 0 {
			continue
		}
		if w < n {
			line[w] = v
		}
		w++
	}
	return line, gained
}
