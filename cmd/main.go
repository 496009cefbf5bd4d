package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func run() error {
	ctx := context.Background()

	cmd := &cobra.Command{
		Use:   "scholar-book-flow",
		Short: "library catalogue and borrowing tracker",
	}

	cmd.AddCommand(HTTPCommand(ctx))

	if err := cmd.Execute(); err != nil {
		return err
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
