package main

import "github.com/PIAAR/PlayerXSpotty/internal/cli"

func main() {
	cli.Execute()
}
