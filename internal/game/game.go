// Package game implements the main game loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LeDaffy/FlappyClone/internal/assets"
	"github.com/LeDaffy/FlappyClone/internal/config"
	"github.com/LeDaffy/FlappyClone/internal/engine/batch"
	"github.com/LeDaffy/FlappyClone/internal/engine/camera"
	"github.com/LeDaffy/FlappyClone/internal/engine/debug"
	"github.com/LeDaffy/FlappyClone/internal/engine/input"
	"github.com/LeDaffy/FlappyClone/internal/engine/physics"
	"github.com/LeDaffy/FlappyClone/internal/engine/renderer"
	"github.com/LeDaffy/FlappyClone/internal/engine/shader"
	"github.com/LeDaffy/FlappyClone/internal/engine/texture"
	"github.com/LeDaffy/FlappyClone/internal/engine/window"
	"github.com/LeDaffy/FlappyClone/internal/game/world"
	"github.com/LeDaffy/FlappyClone/internal/logger"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Shader uniform names.
const (
	uniformView = "view"
	uniformCam  = "cam"
	uniformTex  = "tex"
)

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool

	assets   *assets.Manager
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	program  *shader.Program
	sprite   *renderer.Texture
	camera   *camera.Camera
	sync     *batch.Synchronizer
	world    *world.World
	shots    *debug.ScreenshotCapture
}

// New creates the window, GL resources and world.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	physCfg, err := cfg.Physics.Integrator()
	if err != nil {
		return nil, fmt.Errorf("physics config: %w", err)
	}

	g := &Game{
		config: cfg,
		assets: assets.NewManager(),
		shots:  debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "flappy"),
	}
	for _, root := range cfg.Assets.Roots {
		if err := g.assets.AddDir(root); err != nil {
			return nil, err
		}
	}

	// The window also creates the GL context.
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: renderer.DefaultClearColor,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.program, err = g.linkProgram()
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to build shader: %w", err)
	}

	g.sprite, err = g.loadTexture(cfg.Assets.Texture)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to load sprites: %w", err)
	}

	g.camera = camera.New(math.Vec3{Y: 3}, math.Vec3{})
	g.camera.Resize(width, height)

	g.input = input.New()
	g.sync = batch.NewSynchronizer(logger.Named("batch"))
	g.world = world.New(cfg.Gameplay, physics.NewIntegrator(physCfg))
	g.world.Setup()

	logger.Info("game initialized successfully",
		zap.Stringer("acceleration", physCfg.Mode),
	)
	return g, nil
}

// linkProgram builds the sprite program from asset overrides or the
// embedded sources.
func (g *Game) linkProgram() (*shader.Program, error) {
	uniforms := []string{uniformView, uniformCam, uniformTex}
	cfg := g.config.Assets
	if cfg.VertexShader == "" {
		return shader.LinkSprite(uniforms...)
	}
	vs, err := g.assets.Load(cfg.VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := g.assets.Load(cfg.FragmentShader)
	if err != nil {
		return nil, err
	}
	logger.Info("using shader overrides",
		zap.String("vertex", cfg.VertexShader),
		zap.String("fragment", cfg.FragmentShader),
	)
	return shader.Link(string(vs), string(fs), uniforms...)
}

func (g *Game) loadTexture(name string) (*renderer.Texture, error) {
	data, err := g.assets.Load(name)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(data, name)
	if err != nil {
		return nil, err
	}
	t := renderer.UploadTexture(img)
	logger.Info("texture loaded",
		zap.String("path", name),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
	)
	return t, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now
		if g.config.Physics.FixedStep > 0 {
			dt = g.config.Physics.FixedStep
		}

		// 1. Input
		if g.input.Poll() {
			g.running = false
			break
		}
		g.handleWindow()

		// 2. Gameplay
		g.world.Apply(g.intent())
		g.world.Update(float32(dt.Seconds()))

		// 3. Geometry and draw
		g.renderer.Upload(g.sync.Sync(g.world.Meshes()))
		g.draw()
		if g.input.Keys().JustPressed(input.KeyF12) {
			g.input.Keys().Consume(input.KeyF12)
			g.screenshot()
		}

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleWindow() {
	if w, h, ok := g.input.Resized(); ok {
		g.renderer.Resize(w, h)
		g.camera.Resize(w, h)
	}
	if g.input.Keys().JustPressed(input.KeyEscape) {
		g.running = false
	}
}

// intent reads this frame's actions. A flap is consumed so holding the key
// flaps once.
func (g *Game) intent() world.Intent {
	keys := g.input.Keys()
	var in world.Intent
	if keys.JustPressed(input.KeySpace) {
		in.Flap = true
		keys.Consume(input.KeySpace)
	}
	return in
}

// screenshot saves the frame just drawn. Failures are logged, not fatal.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (g *Game) draw() {
	g.program.Use()
	g.sprite.Bind(0)
	g.program.SetInt(uniformTex, 0)
	g.program.SetMat4(uniformView, g.camera.View())
	g.program.SetMat4(uniformCam, g.camera.Projection())
	g.renderer.Draw()
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.sprite != nil {
		g.sprite.Delete()
	}
	if g.program != nil {
		g.program.Delete()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	g.assets.Close()
}
