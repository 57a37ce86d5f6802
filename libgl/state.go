package libgl

import (
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
)

type GlCapability uint32

const (
	DepthTest   GlCapability = gl.DEPTH_TEST
	Blend       GlCapability = gl.BLEND
	ScissorTest GlCapability = gl.SCISSOR_TEST
	CullFace    GlCapability = gl.CULL_FACE
)

type GlBlendFactor uint32

const (
	BlendZero             GlBlendFactor = gl.ZERO
	BlendOne              GlBlendFactor = gl.ONE
	BlendSrcAlpha         GlBlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha GlBlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

type GlBlendEquation uint32

const (
	BlendFuncAdd GlBlendEquation = gl.FUNC_ADD
)

type GlDepthFunc uint32

const (
	DepthFuncLess   GlDepthFunc = gl.LESS
	DepthFuncLEqual GlDepthFunc = gl.LEQUAL
)

// GlStateManager mirrors the GL state that is changed per frame so redundant
// calls can be skipped. Everything that touches GL state should go through it.
type GlStateManager struct {
	Caps                              map[GlCapability]bool
	ArrayBuffer, ElementArrayBuffer   uint32
	VertexArray, Program              uint32
	ViewportRect, ScissorRect         [4]int
	BlendFactorSrc, BlendFactorDst    GlBlendFactor
	BlendEquationMode                 GlBlendEquation
	DepthFuncFn                       GlDepthFunc
	CullFaceMask                      uint32
	ClearColorRGBA                    [4]float32
	PolygonModeFront, PolygonModeBack uint32
}

var State *GlStateManager

// Environment describes the driver. It is part of the shader cache key.
type Environment struct {
	Vendor   string
	Renderer string
	Version  string
}

var Env *Environment

func GetEnvironment() *Environment {
	return &Environment{
		Vendor:   strings.TrimSuffix(gl.GoStr(gl.GetString(gl.VENDOR)), "\x00"),
		Renderer: strings.TrimSuffix(gl.GoStr(gl.GetString(gl.RENDERER)), "\x00"),
		Version:  strings.TrimSuffix(gl.GoStr(gl.GetString(gl.VERSION)), "\x00"),
	}
}

func NewGlStateManager() *GlStateManager {
	return &GlStateManager{
		Caps:             map[GlCapability]bool{},
		PolygonModeFront: gl.FILL,
		PolygonModeBack:  gl.FILL,
		CullFaceMask:     gl.BACK,
		DepthFuncFn:      DepthFuncLess,
	}
}

func (s *GlStateManager) Enable(cap GlCapability) {
	if s.Caps[cap] {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *GlStateManager) Disable(cap GlCapability) {
	if !s.Caps[cap] {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

// Toggle enables or disables cap.
func (s *GlStateManager) Toggle(cap GlCapability, enabled bool) {
	if enabled {
		s.Enable(cap)
	} else {
		s.Disable(cap)
	}
}

func (s *GlStateManager) CullBack() {
	if s.CullFaceMask == gl.BACK {
		return
	}
	gl.CullFace(gl.BACK)
	s.CullFaceMask = gl.BACK
}

func (s *GlStateManager) BlendFunc(sfactor, dfactor GlBlendFactor) {
	if s.BlendFactorSrc == sfactor && s.BlendFactorDst == dfactor {
		return
	}
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
	s.BlendFactorSrc = sfactor
	s.BlendFactorDst = dfactor
}

func (s *GlStateManager) BlendEquation(mode GlBlendEquation) {
	if s.BlendEquationMode == mode {
		return
	}
	gl.BlendEquation(uint32(mode))
	s.BlendEquationMode = mode
}

func (s *GlStateManager) DepthFunc(fn GlDepthFunc) {
	if s.DepthFuncFn == fn {
		return
	}
	gl.DepthFunc(uint32(fn))
	s.DepthFuncFn = fn
}

func (s *GlStateManager) PolygonMode(face, mode uint32) {
	if face == gl.FRONT_AND_BACK && (s.PolygonModeFront != mode || s.PolygonModeBack != mode) {
		gl.PolygonMode(face, mode)
		s.PolygonModeBack = mode
		s.PolygonModeFront = mode
	}
}

// Wireframe switches both faces between line and fill rasterization.
func (s *GlStateManager) Wireframe(enabled bool) {
	if enabled {
		s.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		s.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (s *GlStateManager) BindBuffer(target uint32, buffer uint32) {
	switch target {
	case gl.ARRAY_BUFFER:
		if s.ArrayBuffer == buffer {
			return
		}
		s.ArrayBuffer = buffer
	case gl.ELEMENT_ARRAY_BUFFER:
		if s.ElementArrayBuffer == buffer {
			return
		}
		s.ElementArrayBuffer = buffer
	}
	gl.BindBuffer(target, buffer)
}

func (s *GlStateManager) BindVertexArray(array uint32) {
	if s.VertexArray == array {
		return
	}
	gl.BindVertexArray(array)
	s.VertexArray = array
}

func (s *GlStateManager) UseProgram(program uint32) {
	if s.Program == program {
		return
	}
	gl.UseProgram(program)
	s.Program = program
}

func (s *GlStateManager) Viewport(x, y, w, h int) {
	if s.ViewportRect[0] == x && s.ViewportRect[1] == y && s.ViewportRect[2] == w && s.ViewportRect[3] == h {
		return
	}
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	s.ViewportRect = [4]int{x, y, w, h}
}

func (s *GlStateManager) Scissor(x, y, w, h int) {
	if s.ScissorRect[0] == x && s.ScissorRect[1] == y && s.ScissorRect[2] == w && s.ScissorRect[3] == h {
		return
	}
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
	s.ScissorRect = [4]int{x, y, w, h}
}

func (s *GlStateManager) ClearColor(r, g, b, a float32) {
	if s.ClearColorRGBA[0] == r && s.ClearColorRGBA[1] == g && s.ClearColorRGBA[2] == b && s.ClearColorRGBA[3] == a {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = [4]float32{r, g, b, a}
}
