// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BrushVertexShader transforms textured brush faces.
//
//go:embed brush.vert
var BrushVertexShader string

// BrushFragmentShader samples the face texture.
//
//go:embed brush.frag
var BrushFragmentShader string

// LineVertexShader transforms world-space debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws lines in a flat color.
//
//go:embed line.frag
var LineFragmentShader string
