package main

import (
	"os"

	"simple-scene/cmd"

	"github.com/urfave/cli"
)

func main() {
	settingsFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "settings file (.toml, .yaml, .yml or .json)",
		},
	}

	app := cli.NewApp()
	app.Name = "simple-scene"
	app.Usage = "a furnished room lit by point, spot and disco lights in two viewports"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open the viewer",
			Description: `
Open a window split into two viewports. Each viewport has its own camera,
light rig and render toggles. Keys act on the viewport under the cursor,
run "simple-scene bindings" for the key map.`,
			Flags: append(settingsFlags,
				cli.StringFlag{
					Name:  "shader-dir",
					Usage: "load shaders from this directory and reload them on change",
				},
				cli.BoolFlag{
					Name:  "no-gui",
					Usage: "hide the overlay",
				},
				cli.BoolFlag{
					Name:  "disable-shader-cache",
					Usage: "always compile shaders from source",
				},
				cli.BoolFlag{
					Name:  "enable-compatibility-profile",
					Usage: "request a compatibility instead of a core profile context",
				},
			),
			Action: cmd.Run,
		},
		{
			Name:   "lights",
			Usage:  "print the light rig of every viewport",
			Flags:  settingsFlags,
			Action: cmd.ListLights,
		},
		{
			Name:   "bindings",
			Usage:  "print the key bindings",
			Action: cmd.ListBindings,
		},
		{
			Name:  "settings",
			Usage: "print the effective settings",
			Flags: append(settingsFlags,
				cli.StringFlag{
					Name:  "format, f",
					Value: "toml",
					Usage: "output format: toml, yaml or json",
				},
			),
			Action: cmd.DumpSettings,
		},
		{
			Name:  "cache",
			Usage: "manage the shader binary cache",
			Subcommands: []cli.Command{
				{
					Name:   "clear",
					Usage:  "remove all cached shader binaries",
					Action: cmd.ClearCache,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		cmd.Fatal(err)
	}
}
