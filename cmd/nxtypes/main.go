// Command nxtypes inspects the NX-SDK common types and validates application
// profiles that use them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var build = "develop"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if n := a.errorCount(); n > 0 {
			fmt.Fprintf(os.Stderr, "%d error(s) logged\n", n)
		}
		stop()
		os.Exit(1)
	}
}
