// Package renderer owns the single shared vertex/index buffer pair and
// issues the one indexed draw call per frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/LeDaffy/FlappyClone/internal/engine/batch"
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
	"github.com/LeDaffy/FlappyClone/internal/logger"
)

const (
	floatSize  = 4
	indexSize  = 4
	vertexSize = primitive.FloatsPerVertex * floatSize
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// DefaultClearColor is the dark teal background.
var DefaultClearColor = [3]float32{0.2, 0.3, 0.3}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	r.createBuffers()
	return r, nil
}

// createBuffers allocates the VAO and empty buffers and records the vertex
// layout: position, color, uv, normal at locations 0-3.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, primitive.PositionOffset*floatSize)
	gl.EnableVertexAttribArray(0)
	// Color
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, primitive.ColorOffset*floatSize)
	gl.EnableVertexAttribArray(1)
	// UV
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, primitive.UVOffset*floatSize)
	gl.EnableVertexAttribArray(2)
	// Normal
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, vertexSize, primitive.NormalOffset*floatSize)
	gl.EnableVertexAttribArray(3)

	// The element buffer binding is VAO state; leave it bound.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("scene buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Uint32("ebo", r.ebo),
	)
}

// Upload copies a synchronized plan to the GPU. A plan flagged Realloc
// replaces the buffer storage; otherwise the existing storage is
// overwritten in place.
func (r *Renderer) Upload(p batch.Plan) {
	r.indexCount = int32(p.IndexCount)
	if p.Empty() {
		return
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	vbytes := len(p.Vertices) * floatSize
	ibytes := len(p.Indices) * indexSize
	if p.Realloc {
		gl.BufferData(gl.ARRAY_BUFFER, vbytes, unsafe.Pointer(&p.Vertices[0]), gl.DYNAMIC_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ibytes, unsafe.Pointer(&p.Indices[0]), gl.DYNAMIC_DRAW)
		logger.Debug("scene buffers reallocated",
			zap.Int("vertex_bytes", vbytes),
			zap.Int("index_bytes", ibytes),
		)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, vbytes, unsafe.Pointer(&p.Vertices[0]))
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, ibytes, unsafe.Pointer(&p.Indices[0]))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Draw clears the frame and issues the indexed draw over the last uploaded
// plan. The caller binds the shader program and its uniforms first.
func (r *Renderer) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.indexCount == 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row
// first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
}
