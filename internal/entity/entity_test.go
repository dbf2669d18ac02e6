package entity

import "testing"

type countingVisitor struct {
	paddles, balls, blocks, powerups int
}

func (c *countingVisitor) VisitPaddle(Paddle)   { c.paddles++ }
func (c *countingVisitor) VisitBall(Ball)       { c.balls++ }
func (c *countingVisitor) VisitBlock(Block)     { c.blocks++ }
func (c *countingVisitor) VisitPowerup(Powerup) { c.powerups++ }

func TestWalkDispatchesEveryVariant(t *testing.T) {
	objects := []Object{
		Paddle{},
		Ball{},
		Block{ID: BlockID{0, 0}},
		Block{ID: BlockID{1, 0}},
		Powerup{Kind: PowerupLife},
	}

	var v countingVisitor
	Walk(objects, &v)

	if v.paddles != 1 || v.balls != 1 || v.blocks != 2 || v.powerups != 1 {
		t.Errorf("visit counts = %+v, expected 1 paddle, 1 ball, 2 blocks, 1 powerup", v)
	}
}

func TestMakePiercing(t *testing.T) {
	b := Ball{Pierced: 3}
	b.MakePiercing(3000, 1)

	if b.Modifier != ModifierPiercing {
		t.Errorf("Modifier = %v, expected piercing", b.Modifier)
	}
	if b.ModifierLeft != 3000 {
		t.Errorf("ModifierLeft = %v, expected 3000", b.ModifierLeft)
	}
	if b.MaxPierce != 1 || b.Pierced != 0 {
		t.Errorf("pierce budget = %d/%d, expected 0/1", b.Pierced, b.MaxPierce)
	}
}

func TestBoxes(t *testing.T) {
	p := Paddle{X: 350, Y: 540, Width: 100, Height: 10}
	if got := p.Box(); got.Right() != 450 || got.Bottom() != 550 {
		t.Errorf("paddle box = %+v", got)
	}

	b := Block{X: 2, Y: 2, Width: 84.9, Height: 36}
	if got := b.Box(); got.X != 2 || got.H != 36 {
		t.Errorf("block box = %+v", got)
	}
}

func TestKindStrings(t *testing.T) {
	if BlockProtector.String() != "protector" {
		t.Errorf("BlockProtector.String() = %q", BlockProtector.String())
	}
	if PowerupLife.String() != "life" {
		t.Errorf("PowerupLife.String() = %q", PowerupLife.String())
	}
	if ModifierNone.String() != "none" {
		t.Errorf("ModifierNone.String() = %q", ModifierNone.String())
	}
}

func TestLifeMarkers(t *testing.T) {
	tests := []struct {
		lives int
		want  []float64
	}{
		{0, nil},
		{1, []float64{50}},
		{2, []float64{37.5, 62.5}},
		{3, []float64{25, 50, 75}},
		{4, []float64{31.25, 43.75, 56.25, 68.75}},
	}

	for _, tt := range tests {
		p := Paddle{X: 0, Width: 100, Lives: tt.lives}
		got := p.LifeMarkers()
		if len(got) != len(tt.want) {
			t.Errorf("lives=%d: got %v, expected %v", tt.lives, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("lives=%d: marker %d = %v, expected %v", tt.lives, i, got[i], tt.want[i])
			}
		}
	}
}
