package cmd

import (
	"simple-scene/config"
	"simple-scene/viewport"

	"github.com/urfave/cli"
)

// loadSettings reads --config if given and applies the command line
// overrides.
func loadSettings(ctx *cli.Context) (*config.Settings, error) {
	settings := config.Default()
	if file := ctx.String("config"); file != "" {
		var err error
		settings, err = config.Load(file)
		if err != nil {
			return nil, err
		}
		logger.Infof("loaded settings from %v", file)
	}

	if dir := ctx.String("shader-dir"); dir != "" {
		settings.ShaderDir = dir
	}
	if ctx.Bool("no-gui") {
		settings.GUI = false
	}
	if ctx.Bool("disable-shader-cache") {
		settings.ShaderCache = false
	}
	if ctx.Bool("enable-compatibility-profile") {
		settings.Window.CompatibilityProfile = true
	}
	return settings, settings.Validate()
}

// buildViewports creates the viewport states without a window, for
// reporting.
func buildViewports(settings *config.Settings) []*viewport.ViewportState {
	props := settings.Properties()
	rects := viewport.SplitHorizontal(settings.Window.Width, settings.Window.Height, len(settings.Viewports))
	viewports := make([]*viewport.ViewportState, 0, len(settings.Viewports))
	for i, vs := range settings.Viewports {
		shader := viewport.ShaderPhong
		if vs.Shader == viewport.ShaderGouraud.String() {
			shader = viewport.ShaderGouraud
		}
		viewports = append(viewports, viewport.New(vs.Name, rects[i], props, viewport.Options{
			CameraPosition: vs.Camera,
			LookAt:         vs.LookAt,
			SwingSpeed:     vs.SwingSpeed,
			Shader:         shader,
		}))
	}
	return viewports
}
