package main

import "github.com/subfuse/subfuse/internal/cli"

func main() {
	cli.Main()
}
