package viewport

import (
	"fmt"
	"io"

	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

// WriteBindings prints the key map.
func WriteBindings(w io.Writer) {
	table := newTable(w, []string{"Key", "Action"})
	for _, b := range Bindings {
		table.Append([]string{b.Label, b.Action})
	}
	table.Append([]string{"W A S D", "move camera"})
	table.Append([]string{"Space / Left Ctrl", "move camera up / down"})
	table.Append([]string{"Right mouse drag", "look around"})
	table.Append([]string{"Scroll", "zoom"})
	table.Render()
}

func vec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}

// WriteLights prints the light rig of every viewport.
func WriteLights(w io.Writer, viewports []*ViewportState) {
	table := newTable(w, []string{"Viewport", "Light", "State", "Position", "Direction", "Cut-off", "Diffuse"})
	for _, v := range viewports {
		for _, l := range v.Rig.Lights() {
			var pos, dir, cutOff string
			switch light := l.Light.(type) {
			case *scene.SpotLight:
				pos = vec(light.Position)
				dir = vec(light.Direction)
				cutOff = fmt.Sprintf("%.1f° / %.1f°", light.CutOff, light.OuterCutOff)
			case *scene.PointLight:
				pos = vec(light.Position)
			}
			table.Append([]string{v.Name, l.Label, l.Light.State().String(), pos, dir, cutOff, vec(l.Light.Active().Diffuse)})
		}
	}
	table.SetFooter([]string{"", "", "", "", "", "swing speed", swingSpeeds(viewports)})
	table.Render()
}

func swingSpeeds(viewports []*ViewportState) string {
	s := ""
	for i, v := range viewports {
		if i > 0 {
			s += " / "
		}
		s += fmt.Sprintf("%.2f", v.Rig.SwingSpeed)
	}
	return s
}
