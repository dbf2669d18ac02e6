// Package breakout is the gameplay engine: it owns one round's paddle, ball,
// block arena and falling powerups, and advances them with sub-stepped
// physics.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/entity"
)

// slot is one arena cell. Destroyed blocks stay in place so ids stay valid.
type slot struct {
	block     entity.Block
	destroyed bool
}

// Arena is the fixed grid of block slots for a round, indexed by BlockID.
// Slots are stored column-major, which is also the collision order.
type Arena struct {
	cols, rows int
	slots      []slot
	live       int
}

// NewArena generates the block grid described by cfg.
//
// Every block gets a random bright color, then a kind: powerup with
// probability cfg.Powerups.SpawnChance, normal otherwise. Blocks in tough
// rows get one extra hit point and protector cells are forced to protector
// kind. Protection is propagated before returning.
func NewArena(cfg config.BreakoutConfig, rng *SimpleRNG) *Arena {
	bc := cfg.Blocks
	a := &Arena{
		cols:  bc.Columns,
		rows:  bc.Rows,
		slots: make([]slot, bc.Columns*bc.Rows),
		live:  bc.Columns * bc.Rows,
	}

	cellW := cfg.World.Width / float64(bc.Columns)
	cellH := bc.GridHeight / float64(bc.Rows)
	for i := 0; i < bc.Columns; i++ {
		for j := 0; j < bc.Rows; j++ {
			a.slots[a.index(i, j)].block = entity.Block{
				X:      cellW*float64(i) + bc.Gap,
				Y:      cellH*float64(j) + bc.Gap,
				Width:  cellW - 2*bc.Gap,
				Height: cellH - 2*bc.Gap,
				ID:     entity.BlockID{Col: i, Row: j},
				Kind:   entity.BlockNormal,
				Health: 1,
				Color:  rng.BrightColor(),
			}
		}
	}

	tough := make(map[int]bool, len(bc.ToughRows))
	for _, row := range bc.ToughRows {
		tough[row] = true
	}
	protectors := make(map[entity.BlockID]bool, len(bc.Protectors))
	for _, cell := range bc.Protectors {
		protectors[entity.BlockID{Col: cell[0], Row: cell[1]}] = true
	}

	for k := range a.slots {
		b := &a.slots[k].block
		if rng.Chance(cfg.Powerups.SpawnChance) {
			b.Kind = entity.BlockPowerup
		}
		if tough[b.ID.Row] {
			b.Health++
		}
		if protectors[b.ID] {
			b.Kind = entity.BlockProtector
		}
	}

	a.propagate()
	return a
}

func (a *Arena) index(col, row int) int {
	return col*a.rows + row
}

// Contains reports whether id names a cell of the grid.
func (a *Arena) Contains(id entity.BlockID) bool {
	return id.Col >= 0 && id.Col < a.cols && id.Row >= 0 && id.Row < a.rows
}

// slot returns the cell for id. An id outside the grid is a programming
// error and panics.
func (a *Arena) slot(id entity.BlockID) *slot {
	if !a.Contains(id) {
		panic(fmt.Sprintf("breakout: block id (%d,%d) outside %dx%d arena", id.Col, id.Row, a.cols, a.rows))
	}
	return &a.slots[a.index(id.Col, id.Row)]
}

// Block returns the block at id and whether it is still alive.
func (a *Arena) Block(id entity.BlockID) (entity.Block, bool) {
	s := a.slot(id)
	return s.block, !s.destroyed
}

// Live returns the number of blocks not yet destroyed.
func (a *Arena) Live() int {
	return a.live
}

// Blocks returns copies of the live blocks in collision order.
func (a *Arena) Blocks() []entity.Block {
	out := make([]entity.Block, 0, a.live)
	for _, s := range a.slots {
		if !s.destroyed {
			out = append(out, s.block)
		}
	}
	return out
}

// destroy switches a block off and re-propagates protection.
func (a *Arena) destroy(id entity.BlockID) {
	s := a.slot(id)
	if s.destroyed {
		return
	}
	s.destroyed = true
	a.live--
	a.propagate()
}
