package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	infraprovider "github.com/amirasaad/fxcalc/infra/provider"
	"github.com/amirasaad/fxcalc/pkg/calculator"
	"github.com/amirasaad/fxcalc/pkg/money"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  calculate <from> <to> <amount> [fee_mode]
  reverse <from> <to> <target_amount> [fee_mode]
  monitor <from> <to> <amount>
  batch <amount> <from:to>[,<from:to>...] [fee_mode]
  rates [base]`

func main() {
	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), os.Args[1:], os.Stdout, pretty); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes one command. JSON output is indented when pretty is set.
func run(ctx context.Context, args []string, out io.Writer, pretty bool) error {
	if len(args) < 1 {
		fmt.Fprintln(out, usage)
		return nil
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	table, err := infraprovider.NewDefaultTableProvider(logger)
	if err != nil {
		return err
	}
	calc, err := calculator.New(table, calculator.DefaultPolicy(), logger)
	if err != nil {
		return err
	}

	cmd, args := args[0], args[1:]
	var res any
	switch cmd {
	case "calculate":
		if len(args) < 3 {
			return fmt.Errorf("usage: calculate <from> <to> <amount> [fee_mode]")
		}
		amount, err := calculator.ParseAmount(calculator.FieldAmount, args[2])
		if err != nil {
			return err
		}
		res, err = calc.Calculate(ctx, args[0], args[1], amount, optional(args, 3))
		if err != nil {
			return err
		}
	case "reverse":
		if len(args) < 3 {
			return fmt.Errorf("usage: reverse <from> <to> <target_amount> [fee_mode]")
		}
		target, err := calculator.ParseAmount(calculator.FieldTargetAmount, args[2])
		if err != nil {
			return err
		}
		res, err = calc.CalculateReverse(ctx, args[0], args[1], target, optional(args, 3))
		if err != nil {
			return err
		}
	case "monitor":
		if len(args) < 3 {
			return fmt.Errorf("usage: monitor <from> <to> <amount>")
		}
		amount, err := calculator.ParseAmount(calculator.FieldAmount, args[2])
		if err != nil {
			return err
		}
		res, err = calc.CalculateWithMonitoring(ctx, args[0], args[1], amount)
		if err != nil {
			return err
		}
	case "batch":
		if len(args) < 2 {
			return fmt.Errorf("usage: batch <amount> <from:to>[,<from:to>...] [fee_mode]")
		}
		amount, err := calculator.ParseAmount(calculator.FieldAmount, args[0])
		if err != nil {
			return err
		}
		batch, err := calc.CalculateBatch(ctx, amount, parsePairs(args[1]), optional(args, 2))
		if err != nil {
			return err
		}
		res = batchView(batch)
	case "rates":
		base := money.USD
		if raw := optional(args, 0); raw != "" {
			base, err = money.ParseCode(raw)
			if err != nil {
				return err
			}
		}
		res, err = table.Rates(ctx, base)
		if err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func optional(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

// parsePairs reads "USD:EUR,GBP:JPY". Malformed items are passed through and
// reported by the calculator as that pair's error.
func parsePairs(raw string) []calculator.Pair {
	var pairs []calculator.Pair
	for _, item := range strings.Split(raw, ",") {
		from, to, _ := strings.Cut(strings.TrimSpace(item), ":")
		pairs = append(pairs, calculator.Pair{From: from, To: to})
	}
	return pairs
}

func batchView(b *calculator.BatchResult) map[string]any {
	view := make(map[string]any, len(b.Results))
	for key, entry := range b.Results {
		if entry.Err != nil {
			view[key] = map[string]string{"error": entry.Err.Error()}
			continue
		}
		view[key] = entry.Result
	}
	return view
}
