// Package main is the arclen command itself.
package main

import (
	"os"

	"go.viam.com/pathparam/cli"
	"go.viam.com/pathparam/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.NewLogger("arclen").Error(err)
		os.Exit(1)
	}
}
