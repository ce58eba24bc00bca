// Command netarea estimates the net signed area under f(x) on [a, b].
//
// Without a subcommand on an interactive terminal it opens the form;
// `netarea eval` runs one validation cycle from flags for scripts.
//
// Exit codes:
//
//	0 = net area computed
//	1 = input rejected
//	2 = usage, config or I/O error
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
