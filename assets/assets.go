// Package assets provides the GLSL sources, either embedded in the binary or
// read from a directory on disk.
package assets

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"
)

//go:embed shaders
var embedded embed.FS

const (
	ShaderPhong   = "phong"
	ShaderGouraud = "gouraud"
	ShaderImGui   = "imgui"
)

var ErrIncludeCycle = errors.New("include cycle")

// Loader reads shader sources and expands #include "file" lines.
type Loader struct {
	fsys fs.FS
	// Dir is the directory on disk, empty for the embedded sources.
	Dir string
}

func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub}
}

func FromDir(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), Dir: dir}
}

func FromFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Shader returns the vertex and fragment source of the named program.
func (l *Loader) Shader(name string) (vert, frag string, err error) {
	vert, err = l.Source(name + ".vert")
	if err != nil {
		return "", "", err
	}
	frag, err = l.Source(name + ".frag")
	if err != nil {
		return "", "", err
	}
	return vert, frag, nil
}

func (l *Loader) Source(file string) (string, error) {
	var sb strings.Builder
	if err := l.expand(&sb, file, nil); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (l *Loader) expand(sb *strings.Builder, file string, stack []string) error {
	for _, f := range stack {
		if f == file {
			return fmt.Errorf("%w: %v > %v", ErrIncludeCycle, strings.Join(stack, " > "), file)
		}
	}
	stack = append(stack, file)

	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return fmt.Errorf("read shader: %w", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, "#include") {
			sb.WriteString(text)
			sb.WriteByte('\n')
			continue
		}
		arg := strings.TrimSpace(strings.TrimPrefix(trimmed, "#include"))
		name, err := strconv.Unquote(arg)
		if err != nil {
			return fmt.Errorf("%v:%d: malformed include %v", file, line, arg)
		}
		if err := l.expand(sb, path.Join(path.Dir(file), name), stack); err != nil {
			return err
		}
	}
	return scanner.Err()
}
