package main

import (
	"github.com/kcaldas/termblog/cmd/cli"
)

func main() {
	cli.Execute()
}
