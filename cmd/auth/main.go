package main

import (
	"log"

	"github.com/MrSnakeDoc/bookhive/internal/app"
)

func main() {
	if err := app.NewAuth().Run(); err != nil {
		log.Fatalf("❌ bookhive-auth failed to start: %v", err)
	}
}
