// SPDX-License-Identifier: MIT
// Command mkp loads OR-Library MKP instances and runs heuristic plans on them.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/knapsack/cmd/mkp/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
