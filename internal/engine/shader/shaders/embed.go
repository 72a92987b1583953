// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SpriteVertexShader transforms the world-space scene batch by the view and
// projection matrices.
//
//go:embed sprite.vert
var SpriteVertexShader string

// SpriteFragmentShader samples the sprite atlas.
//
//go:embed sprite.frag
var SpriteFragmentShader string
