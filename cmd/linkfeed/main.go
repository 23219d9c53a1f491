package main

import "github.com/linkfeed/cli/internal/cli"

func main() {
	cli.Execute()
}
