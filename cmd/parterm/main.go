package main

import "github.com/parterm/parterm/internal/cli"

func main() {
	cli.Execute()
}
