package app

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

func TestAwaitStop(t *testing.T) {
	log := logger.New("error", false)

	t.Run("returns once the component finishes", func(t *testing.T) {
		done := make(chan struct{})
		finished := make(chan struct{})
		go func() {
			awaitStop(context.Background(), log, "consumer", done)
			close(finished)
		}()

		close(done)
		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatal("awaitStop did not return after the component finished")
		}
	})

	t.Run("gives up when the shutdown context expires", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		awaitStop(ctx, log, "consumer", make(chan struct{}))
		if time.Since(start) > time.Second {
			t.Fatal("awaitStop did not honor the shutdown context")
		}
	})
}
