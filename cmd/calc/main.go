// Package main evaluates a calculator session and prints the report.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	calccmd "github.com/louisbranch/tnl-dmg-calc/internal/cmd/calc"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/config"
)

func main() {
	cfg, err := calccmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitOnParseError(err)
	}
	log.SetPrefix("[CALC-CLI] ")

	if err := calccmd.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
