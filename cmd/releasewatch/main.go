package main

import (
	"log"

	"github.com/MrSnakeDoc/releasewatch/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ releasewatch failed to start: %v", err)
	}
}
