package Trees

// pathTo collects the slots from &u.root down to the slot holding v, or down to the
// empty slot where v would be attached. The slots are appended to u.path, deepest last.
// A slot stays valid while only deeper slots are rotated, which is what balancePath relies on.
// Time: O(D); Space: O(D)
func (u *AVLTree[T, S]) pathTo(v T) []**node[T, S] {
	st := u.path[:0]
	for cur := &u.root; ; {
		st = append(st, cur)
		if *cur == nil {
			break
		}
		if c := u.cmp(v, (*cur).v); c < 0 {
			cur = &(*cur).l
		} else if c > 0 {
			cur = &(*cur).r
		} else {
			break
		}
	}
	return st
}

// balancePath walks st from the deepest slot to the root, recomputing heights and sizes
// and rotating wherever the balance factor reaches ±2. Empty slots are skipped.
// st is cleared afterward so the buffer doesn't keep removed nodes alive.
// Time: O(len(st)); Space: O(1)
func (u *AVLTree[T, S]) balancePath(st []**node[T, S]) {
	for i := len(st) - 1; i > -1; i-- {
		slot := st[i]
		a := *slot
		if a == nil {
			continue
		}
		a.update()
		switch a.balance() {
		case -2:
			if a.l.balance() <= 0 { //LL
				rotateRight(slot)
			} else { //LR
				rotateLeft(&a.l)
				rotateRight(slot)
			}
		case 2:
			if a.r.balance() >= 0 { //RR
				rotateLeft(slot)
			} else { //RL
				rotateRight(&a.r)
				rotateLeft(slot)
			}
		}
	}
	clear(st)
	u.path = st[:0]
}
