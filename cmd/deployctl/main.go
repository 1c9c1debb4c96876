package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/codedeploy-go/internal/cli"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultSessionFactory, os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "deployctl:", describe(err))
		stop()
		os.Exit(1)
	}
}

func describe(err error) string {
	if svcErr := pkgerrors.AsService(err); svcErr != nil {
		if svcErr.RequestID != "" {
			return fmt.Sprintf("%s (request id %s)", err, svcErr.RequestID)
		}
		return err.Error()
	}
	return err.Error()
}
