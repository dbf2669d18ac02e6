package breakout

import "github.com/vovakirdan/breakout/internal/entity"

// protectedCells returns the cells a protector at id shields: the one
// directly below and the two diagonally below.
func protectedCells(id entity.BlockID) [3]entity.BlockID {
	below := id.Row + 1
	return [3]entity.BlockID{
		{Col: id.Col, Row: below},
		{Col: id.Col - 1, Row: below},
		{Col: id.Col + 1, Row: below},
	}
}

// propagate recomputes every block's protection from scratch: zero all of
// them, then add one for each live protector covering the block.
//
// Destroyed targets receive nothing. Every target must lie inside the grid;
// config validation rejects protectors on the grid's edge, so an
// out-of-grid target panics in slot.
func (a *Arena) propagate() {
	for k := range a.slots {
		a.slots[k].block.Protection = 0
	}

	for _, s := range a.slots {
		if s.destroyed || s.block.Kind != entity.BlockProtector {
			continue
		}
		for _, id := range protectedCells(s.block.ID) {
			target := a.slot(id)
			if target.destroyed {
				continue
			}
			target.block.Protection++
		}
	}
}
