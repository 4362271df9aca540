package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/anvh/quickspend/internal/domain/parse"
)

func main() {
	app := &cli.App{
		Name:  "quickspend",
		Usage: "parse informal money notes into structured transactions",
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse a single note, e.g. quickspend parse -- \"cafe 45k\"",
				ArgsUsage: "<text>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "language",
						Usage: "label language (en|vi), detected from the text when empty",
					},
					&cli.StringFlag{
						Name:  "currency",
						Value: "VND",
						Usage: "fallback currency when no cue matches (USD|VND)",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "force income or expense instead of inferring",
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: "manual",
						Usage: "input provenance tag (manual|text|voice|image)",
					},
				},
				Action: runParse,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runParse(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return cli.Exit("parse: text argument is required", 2)
	}

	opts := parse.Options{
		InputMode:        c.String("mode"),
		Language:         parse.Language(c.String("language")),
		FallbackCurrency: parse.Currency(c.String("currency")),
	}
	switch c.String("type") {
	case "":
	case "income":
		opts.PreferredType = parse.TypeIncome
	case "expense":
		opts.PreferredType = parse.TypeExpense
	default:
		return cli.Exit(fmt.Sprintf("parse: unknown type %q", c.String("type")), 2)
	}

	tx, err := parse.NewParser().Parse(text, opts)
	if err != nil {
		var noAmount *parse.NoAmountError
		if errors.As(err, &noAmount) {
			return cli.Exit(noAmount.Message(), 1)
		}
		return err
	}

	out, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
