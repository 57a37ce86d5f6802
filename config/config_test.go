package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Viewports, 2)
}

func TestRoundTrip(t *testing.T) {
	s := Default()
	s.ShaderDir = "assets/shaders"
	s.Viewports[1].SwingSpeed = 0.5
	s.Ornaments = map[string]string{"teapot": "ruby"}

	for _, format := range []Format{TOML, YAML, JSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, s.Encode(&buf, format))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestDecodeKeepsDefaults(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{TOML, "[window]\nwidth = 800\n"},
		{YAML, "window:\n  width: 800\n"},
		{JSON, `{"window": {"width": 800}}`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)

			want := Default()
			want.Window.Width = 800
			assert.Equal(t, want, s)
		})
	}
}

func TestDecodeReplacesViewports(t *testing.T) {
	input := `
[[viewports]]
name = "only"
camera = [1.0, 2.0, 3.0]
swing_speed = 3.0
shader = "gouraud"
`
	s, err := Decode(strings.NewReader(input), TOML)
	require.NoError(t, err)
	require.Len(t, s.Viewports, 1)
	assert.Equal(t, Viewport{Name: "only", Camera: mgl32.Vec3{1, 2, 3}, SwingSpeed: 3, Shader: "gouraud"}, s.Viewports[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("gui: false\nornaments:\n  sphere: chrome\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.GUI)

	props := s.Properties()
	for _, o := range props.Ornaments {
		if o.Name == "sphere" {
			assert.Equal(t, scene.Chrome, o.Material)
		}
	}
	assert.Equal(t, scene.DefaultProperties().Ornaments[0], props.Ornaments[0])
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "settings.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"window": {"width": -1}}`), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[window\n"), 0644))
	_, err = Load(broken)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{"zero height", func(s *Settings) { s.Window.Height = 0 }},
		{"no viewports", func(s *Settings) { s.Viewports = nil }},
		{"duplicate name", func(s *Settings) { s.Viewports[1].Name = s.Viewports[0].Name }},
		{"empty name", func(s *Settings) { s.Viewports[0].Name = "" }},
		{"negative swing", func(s *Settings) { s.Viewports[0].SwingSpeed = -1 }},
		{"unknown shader", func(s *Settings) { s.Viewports[0].Shader = "toon" }},
		{"camera at target", func(s *Settings) { s.Viewports[0].LookAt = s.Viewports[0].Camera }},
		{"unknown material", func(s *Settings) { s.Ornaments = map[string]string{"teapot": "gold"} }},
		{"unknown ornament", func(s *Settings) { s.Ornaments = map[string]string{"vase": "ruby"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalid)
		})
	}
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{"a.toml": TOML, "a.YAML": YAML, "a.yml": YAML, "dir/a.json": JSON} {
		got, err := FormatOf(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := FormatOf("settings")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
