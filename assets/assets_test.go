package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedShaders(t *testing.T) {
	l := Embedded()
	for _, name := range []string{ShaderPhong, ShaderGouraud, ShaderImGui} {
		vert, frag, err := l.Shader(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(vert, "#version 450 core"), name)
		assert.True(t, strings.HasPrefix(frag, "#version 450 core"), name)
		assert.NotContains(t, vert+frag, "#include", name)
	}
}

func TestLightingUniformNames(t *testing.T) {
	_, frag, err := Embedded().Shader(ShaderPhong)
	require.NoError(t, err)
	for _, name := range []string{
		"uniform PointLight pointLights[NR_POINT_LIGHTS]",
		"uniform SpotLight spotLight",
		"uniform SpotLight discoLights[NR_DISCO_LIGHTS]",
		"uniform Material material",
		"uniform vec3 viewPos",
		"#ifdef FLAT_SHADING",
	} {
		assert.Contains(t, frag, name)
	}
}

func TestInclude(t *testing.T) {
	fsys := fstest.MapFS{
		"a.frag":         {Data: []byte("#version 450\n#include \"lib/b.glsl\"\nvoid main() {}\n")},
		"lib/b.glsl":     {Data: []byte("  #include \"c.glsl\"\nfloat b;\n")},
		"lib/c.glsl":     {Data: []byte("float c;\n")},
		"loop.frag":      {Data: []byte("#include \"loop.frag\"\n")},
		"malformed.frag": {Data: []byte("#include lighting.glsl\n")},
	}
	l := FromFS(fsys)

	src, err := l.Source("a.frag")
	require.NoError(t, err)
	assert.Equal(t, "#version 450\nfloat c;\nfloat b;\nvoid main() {}\n", src)

	_, err = l.Source("loop.frag")
	assert.ErrorIs(t, err, ErrIncludeCycle)

	_, err = l.Source("malformed.frag")
	assert.ErrorContains(t, err, "malformed include")

	_, _, err = l.Shader("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, w.Drain())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "phong.frag"), []byte("x"), 0644))

	var changed []string
	require.Eventually(t, func() bool {
		changed = append(changed, w.Drain()...)
		return len(changed) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "phong.frag", changed[0])
}
