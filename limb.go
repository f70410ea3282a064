package decimalint

// checkedAdd grows limbs with zero-fill so position is addressable, then
// adds amount into that limb without propagating any resulting carry —
// the caller is responsible for reducing the limb back into [0, Base)
// and forwarding the carry onward.
func checkedAdd(limbs []uint32, position int, amount uint32) []uint32 {
	for len(limbs) <= position {
		limbs = append(limbs, 0)
	}
	limbs[position] += amount
	return limbs
}

// trim removes trailing zero limbs, leaving at least one limb. An empty
// slice normalizes to a single zero limb.
func trim(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	limbs = limbs[:n]
	if len(limbs) == 0 {
		return []uint32{0}
	}
	return limbs
}
