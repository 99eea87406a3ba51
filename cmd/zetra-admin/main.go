package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Taha-Raees/zetratech-front/internal/app/cliapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cliapp.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
