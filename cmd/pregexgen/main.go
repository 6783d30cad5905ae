// Command pregexgen generates Go matching code for a regular expression:
// a file embedding the compiled pattern, a typed match struct with one
// field per capture group, and a FindAll helper.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/manoss96/pregex/internal/codegen"
	"github.com/manoss96/pregex/pkg/pregex"
)

func main() {
	app := &cli.App{
		Name:  "pregexgen",
		Usage: "generate Go matching code for a regular expression",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pattern",
				Aliases:  []string{"p"},
				Usage:    "regular expression to embed",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "prefix for generated identifiers (e.g. Email)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "package name for the generated file",
				Value: "main",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "path of the generated file",
				Required: true,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pregexgen:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// Compiling up front rejects malformed patterns before any file is
	// written, and yields the capture-group layout for the generator.
	p := pregex.Raw(c.String("pattern"))
	if _, err := p.Compile(); err != nil {
		return err
	}

	cfg := codegen.Config{
		Pattern:    p.Regex(),
		Name:       c.String("name"),
		Package:    c.String("package"),
		Groups:     p.Groups(),
		OutputFile: c.String("output"),
	}
	if err := codegen.Generate(cfg); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", cfg.OutputFile)
	return nil
}
