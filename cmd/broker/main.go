package main

import (
	"context"
	"log"

	"github.com/indexdata/circbroker/app"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := app.Run(ctx); err != nil {
		log.Fatalf("broker failed: %v", err)
	}
}
