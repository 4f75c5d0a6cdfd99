package main

import (
	"dtree/internal/cli"
	"os"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
