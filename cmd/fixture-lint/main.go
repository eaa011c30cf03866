package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/config"
	"github.com/shsakib002/e-comm/internal/repository/fixture"
)

func main() {
	path := ""
	switch len(os.Args) {
	case 1:
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		path = cfg.FixturePath
	case 2:
		path = os.Args[1]
	default:
		fmt.Println("Usage: go run cmd/fixture-lint/main.go [fixture-file]")
		fmt.Println("Example: go run cmd/fixture-lint/main.go data/data.json")
		os.Exit(1)
	}

	logger := zap.NewNop()

	store, err := fixture.Load(path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load fixture: %v\n", err)
		os.Exit(1)
	}

	problems := store.Verify()
	if len(problems) == 0 {
		fmt.Printf("%s: OK\n", path)
		return
	}

	fmt.Printf("%s: %d problem(s)\n", path, len(problems))
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	os.Exit(1)
}
