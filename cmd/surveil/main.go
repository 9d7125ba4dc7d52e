package main

import (
	"fmt"
	"os"

	"github.com/exd-tools/surveil-admin/internal/cli"
)

func main() {
	app, err := cli.NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer app.Logger.Sync() //nolint:errcheck

	if err := cli.RootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
