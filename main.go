package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

const version = "0.1.0"

var (
	versionOption = flag.Bool("version", false, "gqlbind version")
	configOption  = flag.String("config", "", "config file (default: search .gqlbind.yml, gqlbind.yml, .gqlbind.yaml, gqlbind.yaml)")
)

func main() {
	flag.Parse()

	if *versionOption {
		fmt.Printf("gqlbind v%s\n", version)

		return
	}

	ctx := context.Background()
	if err := run(ctx, *configOption); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
