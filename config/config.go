// Package config holds the application settings. Settings start from
// Default, are overlaid with a settings file and then with command line
// flags.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalid = errors.New("invalid settings")

type Window struct {
	Title  string `toml:"title" yaml:"title" json:"title"`
	Width  int    `toml:"width" yaml:"width" json:"width"`
	Height int    `toml:"height" yaml:"height" json:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync" json:"vsync"`
	// CompatibilityProfile requests a compatibility instead of a core context.
	CompatibilityProfile bool `toml:"compatibility_profile" yaml:"compatibility_profile" json:"compatibility_profile"`
}

type Viewport struct {
	Name       string     `toml:"name" yaml:"name" json:"name"`
	Camera     mgl32.Vec3 `toml:"camera" yaml:"camera" json:"camera"`
	LookAt     mgl32.Vec3 `toml:"look_at" yaml:"look_at" json:"look_at"`
	SwingSpeed float32    `toml:"swing_speed" yaml:"swing_speed" json:"swing_speed"`
	// Shader is "phong" or "gouraud".
	Shader string `toml:"shader" yaml:"shader" json:"shader"`
}

type Settings struct {
	Window    Window     `toml:"window" yaml:"window" json:"window"`
	Viewports []Viewport `toml:"viewports" yaml:"viewports" json:"viewports"`
	// ShaderDir overrides the embedded shaders and enables hot reload.
	ShaderDir   string `toml:"shader_dir,omitempty" yaml:"shader_dir,omitempty" json:"shader_dir,omitempty"`
	ShaderCache bool   `toml:"shader_cache" yaml:"shader_cache" json:"shader_cache"`
	GUI         bool   `toml:"gui" yaml:"gui" json:"gui"`
	// Ornaments maps ornament names to one of scene.NamedMaterials.
	Ornaments map[string]string `toml:"ornaments,omitempty" yaml:"ornaments,omitempty" json:"ornaments,omitempty"`
}

func Default() *Settings {
	return &Settings{
		Window: Window{
			Title:  "Simple Scene",
			Width:  1600,
			Height: 800,
			VSync:  true,
		},
		Viewports: []Viewport{
			{Name: "left", Camera: mgl32.Vec3{0, 1, 5}, SwingSpeed: scene.DefaultSwingSpeed, Shader: "phong"},
			{Name: "right", Camera: mgl32.Vec3{4, 2.5, 4}, SwingSpeed: 2 * scene.DefaultSwingSpeed, Shader: "gouraud"},
		},
		ShaderCache: true,
		GUI:         true,
	}
}

// Load reads filename over the defaults and validates the result.
func Load(filename string) (*Settings, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return s, nil
}

func Decode(r io.Reader, format Format) (*Settings, error) {
	c, err := lookup(format)
	if err != nil {
		return nil, err
	}
	s := Default()
	// decoders differ in whether they append to or replace a non-empty slice
	s.Viewports = nil
	if err := c.decoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decode %v settings: %w", format, err)
	}
	if s.Viewports == nil {
		s.Viewports = Default().Viewports
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Encode(w io.Writer, format Format) error {
	c, err := lookup(format)
	if err != nil {
		return err
	}
	return c.encoder(w).Encode(s)
}

func (s *Settings) Validate() error {
	var errs []error
	fail := func(format string, v ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, v...)...))
	}

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		fail("window size %vx%v", s.Window.Width, s.Window.Height)
	}
	if len(s.Viewports) == 0 {
		fail("no viewports")
	}
	names := map[string]bool{}
	for i, v := range s.Viewports {
		if v.Name == "" {
			fail("viewport %d has no name", i)
		} else if names[v.Name] {
			fail("duplicate viewport %q", v.Name)
		}
		names[v.Name] = true
		if v.SwingSpeed < 0 {
			fail("viewport %q: negative swing speed %v", v.Name, v.SwingSpeed)
		}
		if v.Shader != "phong" && v.Shader != "gouraud" {
			fail("viewport %q: unknown shader %q", v.Name, v.Shader)
		}
		if v.Camera == v.LookAt {
			fail("viewport %q: camera is at its look-at point", v.Name)
		}
	}

	props := scene.DefaultProperties()
	for name, mat := range s.Ornaments {
		if _, ok := scene.NamedMaterials[mat]; !ok {
			fail("ornament %q: unknown material %q", name, mat)
			continue
		}
		if _, ok := props.WithOrnamentMaterial(name, scene.Material{}); !ok {
			fail("unknown ornament %q", name)
		}
	}
	return errors.Join(errs...)
}

// Properties returns the default scene with the ornament overrides applied.
func (s *Settings) Properties() *scene.Properties {
	props := scene.DefaultProperties()
	for name, mat := range s.Ornaments {
		if m, ok := scene.NamedMaterials[mat]; ok {
			props, _ = props.WithOrnamentMaterial(name, m)
		}
	}
	return props
}
