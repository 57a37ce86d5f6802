package app

import (
	"simple-scene/assets"
	"simple-scene/libgl"
	"simple-scene/viewport"
)

type variant struct {
	shader viewport.Shader
	flat   bool
}

func (v variant) name() string {
	if v.flat {
		return v.shader.String() + " flat"
	}
	return v.shader.String()
}

func (v variant) defines() map[string]string {
	if v.flat {
		return map[string]string{"FLAT_SHADING": ""}
	}
	return nil
}

var sourceNames = map[viewport.Shader]string{
	viewport.ShaderPhong:   assets.ShaderPhong,
	viewport.ShaderGouraud: assets.ShaderGouraud,
}

// programs holds one compiled program per shader and shading mode.
type programs struct {
	loader   *assets.Loader
	variants map[variant]libgl.Program
	imgui    libgl.Program
}

func newPrograms(loader *assets.Loader) *programs {
	p := &programs{
		loader:   loader,
		variants: map[variant]libgl.Program{},
		imgui:    libgl.NewProgram(),
	}
	for shader := range sourceNames {
		for _, flat := range []bool{false, true} {
			p.variants[variant{shader, flat}] = libgl.NewProgram()
		}
	}
	p.build()
	return p
}

// build compiles every program from the loader. Programs that fail keep
// their previous binary, a failure is logged by the program itself.
func (p *programs) build() {
	for v, prog := range p.variants {
		vert, frag, err := p.loader.Shader(sourceNames[v.shader])
		if err != nil {
			logger.Errorf("%v shader: %v", v.name(), err)
			continue
		}
		_ = prog.SetupWith(v.name(), vert, frag, v.defines())
	}

	vert, frag, err := p.loader.Shader(assets.ShaderImGui)
	if err != nil {
		logger.Errorf("imgui shader: %v", err)
		return
	}
	_ = p.imgui.Setup("imgui", vert, frag)
}

func (p *programs) get(shader viewport.Shader, flat bool) libgl.Program {
	return p.variants[variant{shader, flat}]
}

func (p *programs) delete() {
	for _, prog := range p.variants {
		prog.Delete()
	}
	p.imgui.Delete()
}
