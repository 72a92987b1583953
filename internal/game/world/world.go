// Package world holds the gameplay state: the bird, the pipes and the rules
// that act on them each frame.
package world

import (
	"github.com/LeDaffy/FlappyClone/internal/config"
	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/internal/engine/physics"
	"github.com/LeDaffy/FlappyClone/internal/engine/scene"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Intent is the player's input for one frame.
type Intent struct {
	Flap bool
}

// World owns the scene and the bodies integrated each frame.
type World struct {
	cfg   config.GameplayConfig
	integ *physics.Integrator

	scene  *scene.Scene
	bird   *physics.Body
	pipes  *physics.Body
	bodies []*physics.Body
}

// New creates an empty world. Call Setup before the first Update.
func New(cfg config.GameplayConfig, integ *physics.Integrator) *World {
	return &World{
		cfg:   cfg,
		integ: integ,
		scene: scene.New(),
	}
}

// Setup builds the bird and the pipes in a fresh scene. Calling it again
// resets the world.
func (w *World) Setup() {
	w.scene = scene.New()

	bird := scene.NewEntity()
	bird.AddMesh(w.scene, birdMesh(w.cfg.PlayerScale))
	bird.AddVelocity(w.scene, math.Vec3{Z: w.cfg.StartVelocity})
	bird.AddAcceleration(w.scene, math.Vec3{Z: w.cfg.Gravity})
	bird.AddAngularVelocity(w.scene, math.Radians(w.cfg.SpinRateDeg))
	bird.AddAngularAcceleration(w.scene, math.Radians(w.cfg.SpinAccelDeg))

	pipes := scene.NewEntity()
	pipes.AddMesh(w.scene, pipesMesh(w.cfg.PipeStartX))
	pipes.AddVelocity(w.scene, math.Vec3{X: w.cfg.PipeSpeed})

	w.bird = physics.NewBody(bird)
	w.pipes = physics.NewBody(pipes)
	w.bodies = []*physics.Body{w.bird, w.pipes}
}

// Scene returns the scene holding the world's components.
func (w *World) Scene() *scene.Scene { return w.scene }

// Bird returns the player body.
func (w *World) Bird() *physics.Body { return w.bird }

// Pipes returns the pipe pair body.
func (w *World) Pipes() *physics.Body { return w.pipes }

// Meshes returns every mesh in draw order.
func (w *World) Meshes() []component.Mesh { return w.scene.Meshes() }

// Apply acts on the frame's input. A flap launches the bird upward, stops
// its spin and pitches it nose-up.
func (w *World) Apply(in Intent) {
	if !in.Flap || w.bird == nil {
		return
	}
	e := w.bird.Entity
	e.MustVelocity(w.scene).Vector.Z = w.cfg.FlapSpeed
	e.MustAngularVelocity(w.scene).Rate = 0
	w.bird.Angle = w.integ.ClampAngle(math.Radians(w.cfg.FlapAngleDeg))
}

// Update integrates all bodies by dt seconds, then wraps the pipes on X and
// keeps the bird within its vertical bounds.
func (w *World) Update(dt float32) {
	if w.bird == nil {
		return
	}
	w.integ.StepAll(w.scene, w.bodies, dt)

	if bound := w.cfg.PipeWrapX; bound > 0 {
		m := w.pipes.Entity.MustMesh(w.scene)
		switch {
		case m.Translation.X <= -bound:
			m.Translation.X = bound
		case m.Translation.X >= bound:
			m.Translation.X = -bound
		}
	}

	if bound := w.cfg.PlayerBoundZ; bound > 0 {
		m := w.bird.Entity.MustMesh(w.scene)
		m.Translation.Z = math.Clamp(m.Translation.Z, -bound, bound)
	}
}
