package main

import (
	"os"

	"github.com/imagebed/service/internal/client"
)

func main() {
	if err := client.Execute(); err != nil {
		os.Exit(1)
	}
}
