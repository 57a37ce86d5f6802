package cmd

import (
	"fmt"
	"os"

	"simple-scene/app"
	"simple-scene/config"
	"simple-scene/libgl"
	"simple-scene/viewport"

	"github.com/urfave/cli"
)

// Run opens the viewer.
func Run(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	return app.Run(settings)
}

// ListLights prints the light rig of every configured viewport.
func ListLights(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	viewport.WriteLights(os.Stdout, buildViewports(settings))
	return nil
}

// ListBindings prints the key map.
func ListBindings(ctx *cli.Context) error {
	setupLogging(ctx)
	viewport.WriteBindings(os.Stdout)
	return nil
}

// ClearCache removes the shader binary cache.
func ClearCache(ctx *cli.Context) error {
	setupLogging(ctx)

	n, err := libgl.ShaderCache.Entries()
	if err != nil {
		return err
	}
	if err := libgl.ShaderCache.Clear(); err != nil {
		return err
	}
	logger.Noticef("removed %d cached shader binaries from %v", n, libgl.ShaderCache.Dir)
	return nil
}

// DumpSettings writes the effective settings in the requested format.
func DumpSettings(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	format := config.Format(ctx.String("format"))
	if err := settings.Encode(os.Stdout, format); err != nil {
		return fmt.Errorf("dump settings: %w", err)
	}
	return nil
}
