package main

import (
	"log"

	"github.com/MrSnakeDoc/bookhive/internal/app"
)

func main() {
	if err := app.NewFavorites().Run(); err != nil {
		log.Fatalf("❌ bookhive-favorites failed to start: %v", err)
	}
}
