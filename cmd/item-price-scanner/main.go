// Package main is the entry point for the item-price-scanner server.
package main

import (
	"os"

	"github.com/exilemarket/item-price-scanner/cmd/item-price-scanner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
