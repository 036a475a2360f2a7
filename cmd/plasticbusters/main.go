package main

import "github.com/plasticbusters/plasticbusters/internal/cli"

func main() {
	cli.Execute()
}
