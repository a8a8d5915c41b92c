// Package main converts a copied stat sheet into a calculator record.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	importercmd "github.com/louisbranch/tnl-dmg-calc/internal/cmd/importer"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/config"
)

func main() {
	cfg, err := importercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitOnParseError(err)
	}
	log.SetPrefix("[IMPORTER] ")

	if err := importercmd.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
