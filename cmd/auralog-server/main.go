package main

import (
	"os"

	"github.com/auralog/auralog/journalservice"
)

func main() {
	if err := journalservice.Run(); err != nil {
		os.Exit(1)
	}
}
