// Command typespeed runs the typing speed test API and its maintenance
// commands.
//
//	typespeed serve              start the HTTP server
//	typespeed migrate up|down|status
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/typespeed-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "typespeed:", err)
		stop()
		os.Exit(1)
	}
}
