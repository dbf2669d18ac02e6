package entity

// Object is one renderable game record. It is a closed set: only Paddle,
// Ball, Block and Powerup implement it.
type Object interface {
	Accept(v Visitor)
	isObject()
}

// Visitor handles every Object variant. Adding a variant breaks every
// visitor at compile time, so no renderer can silently skip one.
type Visitor interface {
	VisitPaddle(Paddle)
	VisitBall(Ball)
	VisitBlock(Block)
	VisitPowerup(Powerup)
}

func (p Paddle) Accept(v Visitor)  { v.VisitPaddle(p) }
func (b Ball) Accept(v Visitor)    { v.VisitBall(b) }
func (b Block) Accept(v Visitor)   { v.VisitBlock(b) }
func (p Powerup) Accept(v Visitor) { v.VisitPowerup(p) }

func (Paddle) isObject()  {}
func (Ball) isObject()    {}
func (Block) isObject()   {}
func (Powerup) isObject() {}

// Walk visits each object in order.
func Walk(objects []Object, v Visitor) {
	for _, o := range objects {
		o.Accept(v)
	}
}
