package main

import "github.com/go-leo/specfilter/internal/cli"

func main() {
	cli.Execute()
}
