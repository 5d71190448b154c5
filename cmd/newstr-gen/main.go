// Command newstr-gen generates validated string types.
//
// It reads a declaration file (newstr.yaml by default) or a single
// declaration given with -type, checks the referenced functions against the
// package in -dir and writes one Go file holding every declared type.
//
// Typical use is a go:generate directive next to the declarations:
//
//	//go:generate go run newstr/cmd/newstr-gen
//
// With -check nothing is written; the command fails when the file on disk is
// missing or out of date. With -imports it prints the import set of the
// generated file. With -init it writes a starter declaration file, built
// from the -type flags when given, and exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"newstr/internal/analyze"
	"newstr/internal/config"
	"newstr/internal/decl"
	"newstr/internal/diagnostic"
	"newstr/internal/gen"
	"newstr/internal/plan"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	file    string
	dir     string
	runtime string
	output  string

	typeName  string
	predicate string
	parse     string
	regexp    string
	expr      string
	derive    string

	starter bool
	check   bool
	imports bool
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(stderr, "newstr-gen:", err)
		return exitUsage
	}

	var opts options

	fs := flag.NewFlagSet("newstr-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", cfg.File, "declaration file, relative to -dir")
	fs.StringVar(&opts.dir, "dir", cfg.Dir, "package directory")
	fs.StringVar(&opts.runtime, "runtime", cfg.Runtime, "import path of the newstr runtime package")
	fs.StringVar(&opts.output, "output", "", "generated file name")
	fs.StringVar(&opts.typeName, "type", "", "declare a single type instead of reading -file")
	fs.StringVar(&opts.predicate, "predicate", "", "func(string) bool accepting valid values")
	fs.StringVar(&opts.parse, "parse", "", "func(string) (string, error) producing the stored value")
	fs.StringVar(&opts.regexp, "regexp", "", "regular expression valid values match")
	fs.StringVar(&opts.expr, "expr", "", "boolean expr-lang expression over value")
	fs.StringVar(&opts.derive, "derive", "", "comma separated capabilities: text, json, yaml, sql")
	fs.BoolVar(&opts.starter, "init", false, "write a starter declaration file and exit")
	fs.BoolVar(&opts.check, "check", false, "fail if the generated file is missing or out of date")
	fs.BoolVar(&opts.imports, "imports", false, "print the imports of the generated file and exit")
	fs.BoolVar(&opts.verbose, "v", cfg.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "newstr-gen: unexpected arguments %q\n", fs.Args())
		fs.Usage()

		return exitUsage
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	color.NoColor = cfg.ColorDisabled() || !isTerminal(stderr)

	if opts.starter {
		return initDeclarations(&opts, logger, stderr)
	}

	f, source, err := loadDeclarations(&opts)
	if err != nil {
		logger.Error("loading declarations", "err", err)
		return exitUsage
	}

	diags := decl.Validate(f)
	if diags.HasErrors() {
		_ = diagnostic.Print(stderr, source, diags)
		return exitFail
	}

	analyzer := analyze.NewAnalyzer()

	pkg, err := analyzer.LoadDir(opts.dir, f.Output)
	if err != nil {
		logger.Error("loading package", "dir", opts.dir, "err", err)
		return exitFail
	}

	logger.Debug("package loaded", "path", pkg.Path, "dir", pkg.Dir, "funcs", len(pkg.Funcs))

	p := plan.NewResolver(pkg, analyzer).Resolve(f)
	diags.Merge(&p.Diagnostics)

	if opts.verbose {
		logger.Debug("plan resolved", "plan", spew.Sdump(p))
	}

	_ = diagnostic.Print(stderr, source, diags)

	if diags.HasErrors() {
		return exitFail
	}

	if opts.imports {
		for _, imp := range p.Imports {
			fmt.Fprintln(stdout, imp.Spec())
		}

		return exitOK
	}

	genCfg := gen.GeneratorConfig{OutputDir: pkg.Dir}
	if opts.check {
		genCfg.OutputDir = ""
	}

	file, err := gen.NewGenerator(genCfg).Generate(p)
	if err != nil {
		logger.Error("generating code", "err", err)
		return exitFail
	}

	if opts.check {
		drift, err := gen.Check(file, pkg.Dir)
		if err != nil {
			logger.Error("checking generated file", "err", err)
			return exitFail
		}

		if drift != nil {
			fmt.Fprintln(stderr, drift)
			return exitFail
		}

		logger.Info("generated file is up to date", "file", filepath.Join(pkg.Dir, file.Filename))

		return exitOK
	}

	path, err := gen.WriteFile(file, pkg.Dir)
	if err != nil {
		logger.Error("writing generated file", "err", err)
		return exitFail
	}

	logger.Info("generated", "file", path, "types", len(p.Types))

	return exitOK
}

// loadDeclarations builds the declaration file from the flags or reads it
// from disk. It also returns the name diagnostics are reported against.
func loadDeclarations(opts *options) (*decl.File, string, error) {
	var (
		f      *decl.File
		source string
	)

	if opts.typeName != "" {
		f = flagDeclaration(opts)
		source = "flags"
	} else {
		if opts.predicate != "" || opts.parse != "" || opts.regexp != "" || opts.expr != "" || opts.derive != "" {
			return nil, "", errors.New("strategy and -derive flags need -type")
		}

		path := filepath.Join(opts.dir, opts.file)
		if !config.Exists(path) {
			return nil, "", fmt.Errorf("no declaration file %s; use -type for a single declaration", path)
		}

		var err error

		f, err = decl.LoadFile(path)
		if err != nil {
			return nil, "", err
		}

		source = path
	}

	if opts.runtime != "" {
		f.Runtime = opts.runtime
	}

	if opts.output != "" {
		f.Output = opts.output
	}

	return f, source, nil
}

// flagDeclaration builds the single declaration given with -type.
func flagDeclaration(opts *options) *decl.File {
	return decl.Single(decl.TypeDecl{
		Name:      opts.typeName,
		Predicate: opts.predicate,
		Parse:     opts.parse,
		Regexp:    opts.regexp,
		Expr:      opts.expr,
		Derive:    splitList(opts.derive),
	})
}

// starterDeclaration needs no functions in the target package.
var starterDeclaration = decl.TypeDecl{
	Name:   "Identifier",
	Regexp: `^[A-Za-z_][A-Za-z0-9_]*$`,
	Derive: decl.StringOrArray{decl.CapabilityText},
}

// initDeclarations writes a starter declaration file to -dir/-file. An
// existing file is never overwritten.
func initDeclarations(opts *options, logger *slog.Logger, stderr io.Writer) int {
	path := filepath.Join(opts.dir, opts.file)
	if config.Exists(path) {
		logger.Error("declaration file already exists", "file", path)
		return exitFail
	}

	f := decl.Single(starterDeclaration)
	if opts.typeName != "" {
		f = flagDeclaration(opts)
	}

	if opts.runtime != "" {
		f.Runtime = opts.runtime
	}

	if opts.output != "" {
		f.Output = opts.output
	}

	if diags := decl.Validate(f); diags.HasErrors() {
		_ = diagnostic.Print(stderr, "flags", diags)
		return exitFail
	}

	if err := decl.WriteFile(f, path); err != nil {
		logger.Error("writing declaration file", "err", err)
		return exitFail
	}

	logger.Info("wrote declarations", "file", path, "types", len(f.Types))

	return exitOK
}

func splitList(s string) decl.StringOrArray {
	var out decl.StringOrArray

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
