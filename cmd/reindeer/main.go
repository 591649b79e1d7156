// Command reindeer solves oriented-agent mazes: moving forward costs 1,
// turning 90° costs 1000, and the answer is the cheapest cost from the
// 'S' marker (facing East) to the 'E' marker.
//
// Usage:
//
//	reindeer solve [--path] [--turn-cost N] [--move-cost N] FILE...
//	reindeer batch [--workers N] MANIFEST.yaml
//
// Global flags: --debug, --timeout. Every flag can also be set through a
// REINDEER_* environment variable; a .env file in the working directory is
// loaded first when present.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "reindeer"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
