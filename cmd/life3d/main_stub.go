//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of life3d requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life3d` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal frontend, use ./cmd/life3d-term.")
	os.Exit(2)
}
