package main

import (
	"log"

	"github.com/MrSnakeDoc/bookhive/internal/app"
)

func main() {
	if err := app.NewBooks().Run(); err != nil {
		log.Fatalf("❌ bookhive-books failed to start: %v", err)
	}
}
