package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/cli"
)

func main() {
	if err := fang.Execute(context.Background(), cli.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
