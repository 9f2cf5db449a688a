package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the fighter's body rectangle in the arena space.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal centre of the body.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

var Object = donburi.NewComponentType[ObjectData]()
