package libio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBinary() *ProgramBinary {
	data := bytes.Repeat([]byte("program binary payload "), 200)
	return &ProgramBinary{Format: 0x8e21, Data: data}
}

func TestProgramBinaryEncoding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeProgramBinary(&buf, sampleBinary()))
	assert.Less(t, buf.Len(), len(sampleBinary().Data), "payload should be compressed")

	bin, err := DecodeProgramBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleBinary(), bin)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeProgramBinary(bytes.NewReader([]byte("not a binary at all")))
	assert.ErrorIs(t, err, ErrCorruptBinary)

	_, err = DecodeProgramBinary(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrCorruptBinary)
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("vert", "frag", "vendor")
	assert.Len(t, a, 32)
	assert.Equal(t, a, CacheKey("vert", "frag", "vendor"))
	assert.NotEqual(t, a, CacheKey("ver", "tfrag", "vendor"))
}

func TestShaderCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	cache := NewShaderCache(dir)

	bin, err := cache.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, bin)

	require.NoError(t, cache.Put("phong", sampleBinary()))
	n, err := cache.Entries()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	bin, err = cache.Get("phong")
	require.NoError(t, err)
	assert.Equal(t, sampleBinary(), bin)

	require.NoError(t, cache.Clear())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestShaderCacheExpires(t *testing.T) {
	cache := NewShaderCache(t.TempDir())
	require.NoError(t, cache.Put("old", sampleBinary()))

	cache.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }
	bin, err := cache.Get("old")
	require.NoError(t, err)
	assert.Nil(t, bin)

	_, err = os.Stat(cache.path("old"))
	assert.True(t, os.IsNotExist(err))
}

func TestShaderCacheDropsCorruptEntries(t *testing.T) {
	cache := NewShaderCache(t.TempDir())
	require.NoError(t, os.WriteFile(cache.path("broken"), []byte("junk"), 0644))

	bin, err := cache.Get("broken")
	assert.ErrorIs(t, err, ErrCorruptBinary)
	assert.Nil(t, bin)

	_, err = os.Stat(cache.path("broken"))
	assert.True(t, os.IsNotExist(err))
}
