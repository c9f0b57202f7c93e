package main

import (
	"log"

	"github.com/MrSnakeDoc/bookhive/internal/app"
)

func main() {
	if err := app.NewEmail().Run(); err != nil {
		log.Fatalf("❌ bookhive-email failed to start: %v", err)
	}
}
