package libutil

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var shaderVersionPattern = regexp.MustCompile(`(?m)^\s*#version.+$`)

// InjectDefines adds a #define line per entry right after the #version
// directive. An empty value defines a flag.
func InjectDefines(source string, defs map[string]string) string {
	if len(defs) == 0 {
		return source
	}
	keys := maps.Keys(defs)
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		if v := defs[k]; v == "" {
			fmt.Fprintf(&sb, "\n#define %v", k)
		} else {
			fmt.Fprintf(&sb, "\n#define %v %v", k, v)
		}
	}

	loc := shaderVersionPattern.FindStringIndex(source)
	if loc == nil {
		return strings.TrimPrefix(sb.String(), "\n") + "\n" + source
	}
	return source[:loc[1]] + sb.String() + source[loc[1]:]
}

