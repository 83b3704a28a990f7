// Package main is the entry point for the ttv application.
package main

import (
	"github.com/samber/lo"
	"github.com/ttvcli/ttv/cmd"
	"github.com/ttvcli/ttv/config"
	"github.com/ttvcli/ttv/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
