package particle_test

import (
	"fmt"
	"image"

	"github.com/katalvlaran/particles/particle"
)

// ExampleParticle_Update follows a pinned particle through one tick.
func ExampleParticle_Update() {
	frame, _ := particle.NewFrame(800, 600)
	p, err := particle.New(frame, 6, image.Pt(400, 300),
		particle.WithRand(particle.NewRand(42)),
		particle.WithVelocity(100, 0),
		particle.WithAngularRate(0),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = p.Update(0.5)
	fmt.Printf("ttl=%.2f center=(%.1f, %.1f) vy=%.0f\n", p.TTL(), p.Center().X, p.Center().Y, p.Velocity().Y)

	// Output:
	// ttl=2.50 center=(50.0, -500.0) vy=-1000
}

// ExampleFrame shows the pixel ↔ world mapping.
func ExampleFrame() {
	frame, _ := particle.NewFrame(800, 600)
	fmt.Println(frame.PixelToWorld(400, 300))
	fmt.Println(frame.PixelToWorld(0, 0))
	x, y := frame.WorldToPixel(particle.Point{X: 100, Y: 100})
	fmt.Println(x, y)

	// Output:
	// {0 0}
	// {-400 300}
	// 500 200
}
