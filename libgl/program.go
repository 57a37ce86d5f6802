package libgl

import (
	"fmt"
	"reflect"
	"strings"

	"simple-scene/libio"
	"simple-scene/libutil"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderCache is used by every program. Set to nil to always compile from
// source.
var ShaderCache = libio.NewShaderCache(".shadercache")

type program struct {
	uniformLocations map[string]int32
	glId             uint32
	name             string
	vertTemplate     string
	fragTemplate     string
}

// Program is a linked vertex and fragment shader pair. A program that failed
// to build stays usable: Use binds nothing and uniform writes are dropped.
type Program interface {
	Id() uint32
	Name() string
	Setup(name, vertSource, fragSource string) error
	SetupWith(name, vertSource, fragSource string, defs map[string]string) error
	CompileWith(defs map[string]string) error
	Use()
	GetUniformLocation(name string) int32
	SetUniform(name string, value any)
	Delete()
}

func NewProgram() Program {
	return &program{uniformLocations: map[string]int32{}}
}

func (prog *program) Id() uint32 {
	return prog.glId
}

func (prog *program) Name() string {
	return prog.name
}

// Setup stores the sources and builds the program without extra defines.
func (prog *program) Setup(name, vertSource, fragSource string) error {
	return prog.SetupWith(name, vertSource, fragSource, nil)
}

func (prog *program) SetupWith(name, vertSource, fragSource string, defs map[string]string) error {
	prog.name = name
	prog.vertTemplate = vertSource
	prog.fragTemplate = fragSource
	return prog.CompileWith(defs)
}

func (prog *program) CompileWith(defs map[string]string) error {
	vert := libutil.InjectDefines(prog.vertTemplate, defs)
	frag := libutil.InjectDefines(prog.fragTemplate, defs)

	id, cacheKey, cached := prog.loadCached(vert, frag)
	if !cached {
		var err error
		id, err = linkProgram(prog.name, vert, frag)
		if err != nil {
			logger.Errorf("%v", err)
			return err
		}
	}

	if prog.glId != 0 {
		gl.DeleteProgram(prog.glId)
	}
	prog.glId = id
	prog.uniformLocations = map[string]int32{}
	setObjectLabel(gl.PROGRAM, id, prog.name)

	if !cached {
		prog.storeCached(cacheKey)
	}
	logger.Infof("%v shader ready (cached: %v)", prog.name, cached)
	return nil
}

func (prog *program) loadCached(vert, frag string) (id uint32, key string, ok bool) {
	if ShaderCache == nil || Env == nil {
		return 0, "", false
	}
	key = libio.CacheKey(vert, frag, Env.Vendor, Env.Renderer, Env.Version)
	bin, err := ShaderCache.Get(key)
	if err != nil {
		logger.Warningf("could not read shader cache: %v", err)
	}
	if bin == nil {
		return 0, key, false
	}

	id = gl.CreateProgram()
	gl.ProgramBinary(id, bin.Format, Pointer(bin.Data), int32(len(bin.Data)))
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		// the driver rejected the binary, build from source instead
		gl.DeleteProgram(id)
		return 0, key, false
	}
	return id, key, true
}

func (prog *program) storeCached(key string) {
	if ShaderCache == nil || key == "" {
		return
	}
	var length int32
	gl.GetProgramiv(prog.glId, gl.PROGRAM_BINARY_LENGTH, &length)
	if length == 0 {
		return
	}
	buf := make([]byte, length)
	var format uint32
	gl.GetProgramBinary(prog.glId, length, &length, &format, Pointer(buf))
	err := ShaderCache.Put(key, &libio.ProgramBinary{Format: format, Data: buf[:length]})
	if err != nil {
		logger.Warningf("could not write shader cache: %v", err)
	}
}

func compileStage(name string, stage uint32, source string) (uint32, error) {
	id := gl.CreateShader(stage)
	cStrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cStrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("failed to compile %v shader, log: %v", name, strings.TrimRight(infoLog, "\x00"))
	}
	return id, nil
}

func linkProgram(name, vert, frag string) (uint32, error) {
	vs, err := compileStage(name+" vertex", gl.VERTEX_SHADER, vert)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileStage(name+" fragment", gl.FRAGMENT_SHADER, frag)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.ProgramParameteri(id, gl.PROGRAM_BINARY_RETRIEVABLE_HINT, gl.TRUE)
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		infoLog := readProgramInfoLog(id)
		gl.DeleteProgram(id)
		return 0, fmt.Errorf("failed to link %v shader, log: %v", name, infoLog)
	}
	return id, nil
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (prog *program) Use() {
	State.UseProgram(prog.glId)
}

func (prog *program) Delete() {
	if prog.glId != 0 {
		gl.DeleteProgram(prog.glId)
	}
	prog.glId = 0
}

// GetUniformLocation caches lookups. Missing names are logged once.
func (prog *program) GetUniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}
	if prog.glId == 0 {
		return -1
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location

	if location == -1 {
		logger.Debugf("%v shader: could not get location of %q", prog.name, name)
	}

	return location
}

func (prog *program) SetUniform(name string, value any) {
	location := prog.GetUniformLocation(name)
	if location == -1 {
		return
	}
	setProgramUniformAny(prog.glId, location, value)
}

func setProgramUniformAny(prog uint32, location int32, value any) {
	for refVal := reflect.ValueOf(value); refVal.Kind() == reflect.Ptr; refVal = reflect.ValueOf(value) {
		value = refVal.Elem().Interface()
	}

	switch v := value.(type) {
	case float32:
		gl.ProgramUniform1f(prog, location, v)
	case float64:
		gl.ProgramUniform1f(prog, location, float32(v))
	case bool:
		var i int32
		if v {
			i = 1
		}
		gl.ProgramUniform1i(prog, location, i)
	case int:
		gl.ProgramUniform1i(prog, location, int32(v))
	case int32:
		gl.ProgramUniform1i(prog, location, v)
	case uint32:
		gl.ProgramUniform1ui(prog, location, v)
	case mgl32.Vec2:
		gl.ProgramUniform2f(prog, location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.ProgramUniform3f(prog, location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.ProgramUniform4f(prog, location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat3:
		gl.ProgramUniformMatrix3fv(prog, location, 1, false, &v[0])
	case mgl32.Mat4:
		gl.ProgramUniformMatrix4fv(prog, location, 1, false, &v[0])
	default:
		logger.Panicf("Unsupported uniform type %T", value)
	}
}
