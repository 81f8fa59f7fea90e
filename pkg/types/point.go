package types

import "fmt"

type Pointi struct {
	X int
	Y int
}

func (p Pointi) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
