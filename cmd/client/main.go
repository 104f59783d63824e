package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/aroha/internal/buildinfo"
	"github.com/dmitrijs2005/aroha/internal/client/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(ctx)
	root.Version = buildinfo.String()

	if err := root.Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
