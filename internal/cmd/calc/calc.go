// Package calc evaluates a calculator session from the command line.
package calc

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
	entrypoint "github.com/louisbranch/tnl-dmg-calc/internal/platform/cmd"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/errors/i18n"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/otel"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/share"
)

const tracerName = "github.com/louisbranch/tnl-dmg-calc/internal/cmd/calc"

// Config holds calc command configuration.
type Config struct {
	Share     string
	StatePath string
	Chart     bool
	Explain   bool
	Token     bool
	Locale    string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Share, "share", "", "share token of the session to evaluate")
	fs.StringVar(&cfg.StatePath, "state", "", "session state JSON file, or - for stdin")
	fs.BoolVar(&cfg.Chart, "chart", false, "write the chart as CSV instead of the summary")
	fs.BoolVar(&cfg.Explain, "explain", false, "print the damage formula steps for every build")
	fs.BoolVar(&cfg.Token, "token", false, "print the share token of the evaluated session")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used to format numbers")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Share != "" && cfg.StatePath != "" {
		return Config{}, errors.New("share and state are mutually exclusive")
	}
	return cfg, nil
}

// Run evaluates the configured session and writes the report to out. in is
// read when the state path is "-".
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCalc, func(ctx context.Context) error {
		_, span := otel.Tracer(tracerName).Start(ctx, "calc.evaluate")
		defer span.End()

		s, err := loadState(cfg, in)
		if err != nil {
			return err
		}
		span.SetAttributes(
			attribute.Int("calc.builds", len(s.Builds)),
			attribute.Int("calc.enemies", len(s.Enemies)),
		)

		if cfg.Chart {
			return writeChart(out, s)
		}
		tag := i18n.GetCatalog(cfg.Locale).Tag()
		p := message.NewPrinter(tag)
		writeSummary(p, out, s)
		if cfg.Explain {
			writeExplain(p, tag, out, s)
		}
		if cfg.Token {
			token, err := share.Encode(s)
			if err != nil {
				return err
			}
			p.Fprintf(out, "Token: %s\n", token)
		}
		return nil
	})
}

func loadState(cfg Config, in io.Reader) (session.State, error) {
	s := session.Default()
	switch {
	case cfg.Share != "":
		decoded, err := share.Decode(strings.TrimSpace(cfg.Share))
		if err != nil {
			return session.State{}, err
		}
		s = decoded
	case cfg.StatePath != "":
		r := in
		if cfg.StatePath != "-" {
			f, err := os.Open(cfg.StatePath)
			if err != nil {
				return session.State{}, fmt.Errorf("open state: %w", err)
			}
			defer f.Close()
			r = f
		}
		if r == nil {
			return session.State{}, errors.New("state input is required")
		}
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return session.State{}, fmt.Errorf("decode state: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return session.State{}, err
	}
	return s, nil
}

func writeSummary(p *message.Printer, out io.Writer, s session.State) {
	summary := session.Summarize(s)
	p.Fprintf(out, "Enemy: %s\n", summary.Enemy)
	if len(summary.Results) == 0 {
		p.Fprintf(out, "No builds.\n")
		return
	}
	for _, r := range summary.Results {
		p.Fprintf(out, "%s: %.1f per cast, %.2f DPS (crit %.2f%%, hit %.2f%%)\n",
			r.Build, r.Damage.ExpectedDamage, r.DPS.DPS, r.Damage.CritChance*100, r.Damage.HitChance*100)
	}
}

func writeExplain(p *message.Printer, tag language.Tag, out io.Writer, s session.State) {
	enemy := s.ActiveEnemy()
	ctx := s.Context()
	for _, b := range s.Builds {
		p.Fprintf(out, "\n%s vs %s\n", b.Name, enemy.Name)
		for _, step := range combat.Explain(combat.Calculate(b, enemy, ctx), ctx.PvP, tag) {
			p.Fprintf(out, "  %s: %s = %.4f\n", step.Label, step.Formula, step.Value)
		}
	}
}

func writeChart(out io.Writer, s session.State) error {
	chart, err := combat.Sweep(s.SweepRequest())
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	if err := w.Write(append([]string{string(chart.Stat)}, chart.Builds...)); err != nil {
		return err
	}
	for _, point := range chart.Points {
		row := make([]string, 0, len(point.Values)+1)
		row = append(row, strconv.FormatFloat(point.X, 'f', -1, 64))
		for _, v := range point.Values {
			row = append(row, strconv.FormatFloat(v, 'f', 4, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
