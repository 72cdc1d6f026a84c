package main

import (
	"context"
	"os"

	"github.com/a-peyrard/appboot/runner"
)

func main() {
	ctx := runner.WithSyscallKillableContext(context.Background())
	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
