package main

import (
	"os"

	"priced/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
