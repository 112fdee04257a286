package main

import (
	"github.com/henri123lemoine/plant-haiku/internal/cli"
)

func main() {
	cli.Execute()
}
