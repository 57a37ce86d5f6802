package libio

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrec/lz4/v4"
)

const (
	// "SBIN"
	MagicNumberBIN      = 0x4e494253
	BINVersion1_000_000 = 1_000_000
)

var ErrCorruptBinary = errors.New("corrupt program binary")

type ProgramBinaryHeader struct {
	Check   uint32
	Version uint32
	Format  uint32
	Length  uint32
}

// ProgramBinary is a driver specific program blob as returned by
// glGetProgramBinary.
type ProgramBinary struct {
	Format uint32
	Data   []byte
}

// EncodeProgramBinary writes a header followed by the lz4 compressed blob.
func EncodeProgramBinary(w io.Writer, bin *ProgramBinary) error {
	bw := &BinaryWriter{Dst: w, Order: binary.LittleEndian}

	header := ProgramBinaryHeader{
		Check:   MagicNumberBIN,
		Version: BINVersion1_000_000,
		Format:  bin.Format,
		Length:  uint32(len(bin.Data)),
	}
	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write program binary header: %w", bw.Err)
	}

	lzw := lz4.NewWriter(bw)
	if err := lzw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
		return err
	}
	if _, err := lzw.Write(bin.Data); err != nil {
		return fmt.Errorf("could not compress program binary: %w", err)
	}
	return lzw.Close()
}

func DecodeProgramBinary(r io.Reader) (*ProgramBinary, error) {
	br := &BinaryReader{Src: r, Order: binary.LittleEndian}

	header := ProgramBinaryHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("%w: expected header: %v", ErrCorruptBinary, br.Err)
	}
	if header.Check != MagicNumberBIN {
		return nil, fmt.Errorf("%w: expected magic number 0x%08x but was 0x%08x", ErrCorruptBinary, MagicNumberBIN, header.Check)
	}
	if header.Version != BINVersion1_000_000 {
		return nil, fmt.Errorf("%w: version %d unsupported", ErrCorruptBinary, header.Version)
	}

	data := make([]byte, header.Length)
	if _, err := io.ReadFull(lz4.NewReader(br), data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBinary, err)
	}
	return &ProgramBinary{Format: header.Format, Data: data}, nil
}

// ShaderCache stores program binaries on disk. Entries older than MaxAge are
// dropped since a driver update may produce different code.
type ShaderCache struct {
	Dir    string
	MaxAge time.Duration
	now    func() time.Time
}

func NewShaderCache(dir string) *ShaderCache {
	return &ShaderCache{
		Dir:    dir,
		MaxAge: 30 * 24 * time.Hour,
		now:    time.Now,
	}
}

// CacheKey hashes the program sources together with the driver strings.
func CacheKey(parts ...string) string {
	hasher := md5.New()
	for _, p := range parts {
		hasher.Write([]byte(p))
		hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func (c *ShaderCache) path(key string) string {
	return filepath.Join(c.Dir, key+".bin")
}

// Get returns nil without error on a miss.
func (c *ShaderCache) Get(key string) (*ProgramBinary, error) {
	path := c.path(key)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.now().Sub(info.ModTime()) > c.MaxAge {
		return nil, os.Remove(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bin, err := DecodeProgramBinary(file)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return bin, nil
}

func (c *ShaderCache) Put(key string, bin *ProgramBinary) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("could not create shader cache directory: %w", err)
	}
	file, err := os.OpenFile(c.path(key), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not write shader cache: %w", err)
	}
	if err := EncodeProgramBinary(file, bin); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Clear deletes the cache directory.
func (c *ShaderCache) Clear() error {
	return os.RemoveAll(c.Dir)
}

// Entries counts the cached binaries.
func (c *ShaderCache) Entries() (int, error) {
	matches, err := filepath.Glob(filepath.Join(c.Dir, "*.bin"))
	return len(matches), err
}
