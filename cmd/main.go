package main

import (
	"os"

	"github.com/rdvelde/showtrip/cmd/showtrip"
)

func main() {
	if err := showtrip.Execute(); err != nil {
		os.Exit(1)
	}
}
