package cmd

import (
	"os"

	"simple-scene/log"

	"github.com/urfave/cli"
)

var logger = log.New("simple-scene")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.LevelFromFlags(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}

// Fatal logs err and exits with a non-zero status.
func Fatal(err error) {
	logger.Error(err)
	os.Exit(1)
}
