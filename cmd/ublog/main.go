package main

import (
	"context"

	"github.com/faizmokh/ublog/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
