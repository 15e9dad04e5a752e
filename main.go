package main

import (
	"context"
	"os"

	"recipe-catalog/cmd/cli"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Errorf("recipe-catalog: %v", err)
		os.Exit(1)
	}
}
