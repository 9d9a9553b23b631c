package main

import "flextime/internal/cli"

func main() {
	cli.Execute()
}
