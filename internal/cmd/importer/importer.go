// Package importer converts a copied in-game stat sheet into a build or enemy
// record from the command line.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/tnl-dmg-calc/internal/importer/statsheet"
	entrypoint "github.com/louisbranch/tnl-dmg-calc/internal/platform/cmd"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/share"
)

// Config holds importer command configuration.
type Config struct {
	File  string
	Kind  statsheet.Kind
	Name  string
	Share bool
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	var kind string
	fs.StringVar(&cfg.File, "file", "", "stat sheet text file; stdin when empty")
	fs.StringVar(&kind, "kind", string(statsheet.KindBuild), "record to produce: build or enemy")
	fs.StringVar(&cfg.Name, "name", "", "name of the imported record")
	fs.BoolVar(&cfg.Share, "share", false, "also print a share token of a session holding the record")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	parsed, err := statsheet.ParseKind(kind)
	if err != nil {
		return Config{}, err
	}
	cfg.Kind = parsed
	return cfg, nil
}

type output struct {
	statsheet.Result
	Token string `json:"token,omitempty"`
}

// Run imports the stat sheet and writes the record as JSON to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceImporter, func(context.Context) error {
		text, err := readSheet(cfg.File, in)
		if err != nil {
			return err
		}
		result, err := statsheet.Import(text, cfg.Name, cfg.Kind)
		if err != nil {
			return err
		}

		o := output{Result: result}
		if cfg.Share {
			token, err := shareToken(result)
			if err != nil {
				return err
			}
			o.Token = token
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	})
}

func readSheet(path string, in io.Reader) (string, error) {
	r := in
	if strings.TrimSpace(path) != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open stat sheet: %w", err)
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		return "", errors.New("stat sheet input is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stat sheet: %w", err)
	}
	return string(data), nil
}

// shareToken returns the token of a fresh session holding the imported record.
func shareToken(result statsheet.Result) (string, error) {
	s := session.Default()
	if result.Build != nil {
		s.Builds = append(s.Builds, *result.Build)
	}
	if result.Enemy != nil {
		s.Enemies = append(s.Enemies, *result.Enemy)
	}
	return share.Encode(s)
}
