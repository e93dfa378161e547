// Package main is the entry point for the ips CLI client.
package main

import (
	"github.com/exilemarket/item-price-scanner/cmd/ips/cmd"
)

func main() {
	cmd.Execute()
}
