package physics_test

import (
	"fmt"

	"github.com/dmitry-sapelnikov/neat-physics"
)

// A box dropped onto a static floor comes to rest without falling through.
func ExampleWorld_Step() {
	w := physics.NewWorld(physics.Vec2{X: 0, Y: -10}, 10, 4, 0)
	w.AddBody(physics.Vec2{X: 100, Y: 1}, 0, 0.5, physics.Vec2{X: 0, Y: -0.5}, 0)
	box, _ := w.AddBody(physics.Vec2{X: 1, Y: 1}, 1, 0.5, physics.Vec2{X: 0, Y: 5}, 0)

	const dt = float32(1.0 / 60.0)
	for i := 0; i < 300; i++ {
		w.Step(dt)
	}

	y := w.Body(box).Position().Y
	fmt.Println("resting:", y > 0.45 && y < 0.55)
	// Output: resting: true
}
