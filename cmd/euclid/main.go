package main

import "github.com/aalvaropc/euclid/internal/cli"

// Build metadata is injected with
// -ldflags "-X github.com/aalvaropc/euclid/internal/buildinfo.Version=...".
func main() {
	cli.Execute()
}
