package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature of RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with the process arguments under a context that is
// canceled on SIGINT or SIGTERM, then exits with its code. Without
// arguments the usage text is printed.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if code == ExitOK && ctx.Err() != nil {
		code = ExitInterrupted
	}

	stop()
	os.Exit(code)
}
