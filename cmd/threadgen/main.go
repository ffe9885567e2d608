package main

import (
	"github.com/NVIDIA/threadgen/pkg/cli"
)

func main() {
	cli.Execute()
}
