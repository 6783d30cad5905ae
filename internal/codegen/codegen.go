// Package codegen generates Go source that embeds a compiled pattern
// together with a typed result struct and a FindAll helper, so consumers
// get named, structured captures instead of indexed slices.
package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

const regexp2Pkg = "github.com/dlclark/regexp2"

// Config describes one generated matcher.
type Config struct {
	// Pattern is the regular expression to embed.
	Pattern string

	// Name is the prefix for generated identifiers (e.g. "Email" generates
	// EmailMatch and FindAllEmail).
	Name string

	// Package is the Go package name for the generated file.
	Package string

	// Groups holds one entry per capturing group of the pattern, in
	// construction order: the group's name, or "" for unnamed groups.
	Groups []string

	// OutputFile is the path the generated code is written to.
	OutputFile string
}

// Validate checks if the config is valid.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

// fieldName returns the struct field for the capture group at index i
// (0-based): the group's exported name, or GroupN for unnamed groups.
func fieldName(groups []string, i int) string {
	if groups[i] != "" {
		return UpperFirst(groups[i])
	}
	return fmt.Sprintf("Group%d", i+1)
}

// Generate renders the matcher file and writes it to cfg.OutputFile.
func Generate(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("invalid config: output file cannot be empty")
	}
	if err := render(cfg).Save(cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.OutputFile, err)
	}
	return nil
}

// render builds the generated file.
func render(cfg Config) *jen.File {
	name := UpperFirst(cfg.Name)
	varName := LowerFirst(name) + "Pattern"
	structName := name + "Match"

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by pregexgen for pattern: %s", cfg.Pattern))
	f.HeaderComment("DO NOT EDIT.")

	f.Var().Id(varName).Op("=").Qual(regexp2Pkg, "MustCompile").Call(
		jen.Lit(cfg.Pattern),
		jen.Qual(regexp2Pkg, "Multiline").Op("|").Qual(regexp2Pkg, "Singleline"),
	)

	fields := []jen.Code{
		jen.Id("Match").String().Comment("Full match"),
	}
	for i := range cfg.Groups {
		fields = append(fields, jen.Id(fieldName(cfg.Groups, i)).String())
	}
	f.Comment(fmt.Sprintf("%s holds one match of the %s pattern.", structName, name))
	f.Type().Id(structName).Struct(fields...)

	// The engine numbers unnamed groups before named ones, so unnamed
	// groups are fetched by their running number and named groups by name.
	assigns := []jen.Code{
		jen.Id("r").Op(":=").Id(structName).Values(jen.Dict{
			jen.Id("Match"): jen.Id("m").Dot("String").Call(),
		}),
	}
	unnamed := 0
	for i, group := range cfg.Groups {
		var get *jen.Statement
		if group != "" {
			get = jen.Id("m").Dot("GroupByName").Call(jen.Lit(group))
		} else {
			unnamed++
			get = jen.Id("m").Dot("GroupByNumber").Call(jen.Lit(unnamed))
		}
		assigns = append(assigns,
			jen.Id("r").Dot(fieldName(cfg.Groups, i)).Op("=").Add(get).Dot("String").Call(),
		)
	}
	assigns = append(assigns,
		jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("r")),
		jen.List(jen.Id("m"), jen.Id("err")).Op("=").Id(varName).Dot("FindNextMatch").Call(jen.Id("m")),
	)

	f.Comment(fmt.Sprintf("FindAll%s returns every match of the %s pattern in the input.", name, name))
	f.Func().Id("FindAll" + name).Params(jen.Id("input").String()).Index().Id(structName).Block(
		jen.Var().Id("out").Index().Id(structName),
		jen.List(jen.Id("m"), jen.Id("err")).Op(":=").Id(varName).Dot("FindStringMatch").Call(jen.Id("input")),
		jen.For(jen.Id("err").Op("==").Nil().Op("&&").Id("m").Op("!=").Nil()).Block(assigns...),
		jen.Return(jen.Id("out")),
	)

	return f
}

// GenerateSource renders the matcher file and returns it as source text,
// without touching the filesystem.
func GenerateSource(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}
	return fmt.Sprintf("%#v", render(cfg)), nil
}
