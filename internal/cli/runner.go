package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/faq/internal/accordion"
	"github.com/idilsaglam/faq/internal/config"
	"github.com/idilsaglam/faq/internal/content"
	"github.com/idilsaglam/faq/internal/markup"
	"github.com/idilsaglam/faq/internal/ui"
)

// Options carry root flags, config and output streams into subcommands.
type Options struct {
	Config config.Config
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(o.Stderr, log.Options{Level: o.Config.Level(), Prefix: "faq"})
	}
	if o.Config.Heading == "" {
		o.Config.Heading = accordion.DefaultHeading
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "ls":
		return doList(ctx, opt)
	case "show":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: faq show <id...>")
			return 2
		}
		return doShow(ctx, opt, a)
	case "html":
		return doHTML(ctx, opt, a)
	case "tui":
		return doTUI(ctx, opt)
	case "check":
		return doCheck(ctx, opt)
	case "export":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: faq export <file.json|file.toml>")
			return 2
		}
		return doExport(ctx, opt, a[0])
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `faq - an accessible FAQ accordion

Usage:
  faq [flags] <subcommand> [args]

Subcommands:
  tui                  Browse the questions interactively
  ls                   List entry ids and questions
  show <id...>         Print the list with the given entries expanded
  html [flags]         Write the accordion as HTML
      -o <file>        output file (default stdout)
      -fragment        write the widget only, without a page around it
      -open <id,...>   entries rendered expanded
  check                Validate the content source
  export <file>        Write the current content to a .json or .toml file

Flags:
  -content <file>      content file (.json or .toml); builtin content if empty
  -theme <name>        classic, neon or mono
  -log-level <level>   debug, info, warn or error

Environment:
  FAQ_CONTENT, FAQ_HEADING, FAQ_THEME, FAQ_LOG_LEVEL

Examples:
  faq tui
  faq -content parking.toml show hours cost
  faq html -open faq1 -o faq.html
`)
}

// -------------- subcommand impls ----------------

func loadList(ctx context.Context, opt Options) (*accordion.List, error) {
	src := "builtin"
	if opt.Config.ContentPath != "" {
		src = opt.Config.ContentPath
	}
	entries, err := content.Load(ctx, content.FromPath(opt.Config.ContentPath))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	opt.Logger.Debug("loaded content", "source", src, "entries", len(entries))
	return accordion.New(opt.Config.Heading, accordion.DefaultInstructions(), entries)
}

func doList(ctx context.Context, opt Options) int {
	l, err := loadList(ctx, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s", t.Title.Render(l.Heading()), t.Muted.Render(fmt.Sprintf("%d questions", l.Len()))),
		"",
	}
	if l.Len() == 0 {
		lines = append(lines, t.Muted.Render("no entries"))
	}
	width := 0
	for _, it := range l.Items() {
		width = max(width, len(it.ID()))
	}
	for i, it := range l.Items() {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)),
			t.Accent.Render(fmt.Sprintf("%-*s", width, it.ID())),
			it.Entry().Question))
	}
	lines = append(lines, "", t.Muted.Render("Tip: expand with `faq show <id>`"))
	ui.Panel(opt.Stdout, strings.Join(lines, "\n"))
	return 0
}

func doShow(ctx context.Context, opt Options, ids []string) int {
	l, err := loadList(ctx, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	if code := activateAll(opt, l, ids); code != 0 {
		return code
	}
	ui.Panel(opt.Stdout, ui.RenderStatic(l, 80))
	return 0
}

func activateAll(opt Options, l *accordion.List, ids []string) int {
	for _, id := range ids {
		if !l.Activate(id, accordion.Pointer) {
			ui.Fail(opt.Stderr, fmt.Sprintf("no entry with id %q", id))
			ui.Hint(opt.Stderr, "run `faq ls` to see valid ids")
			return 2
		}
	}
	return 0
}

func doHTML(ctx context.Context, opt Options, args []string) int {
	fs := flag.NewFlagSet("html", flag.ContinueOnError)
	fs.SetOutput(opt.Stderr)
	out := fs.String("o", "", "output file (default stdout)")
	fragment := fs.Bool("fragment", false, "write the widget only")
	open := fs.String("open", "", "comma-separated ids rendered expanded")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		ui.Fail(opt.Stderr, "html: unexpected arguments: "+strings.Join(fs.Args(), " "))
		return 2
	}

	l, err := loadList(ctx, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	if *open != "" {
		if code := activateAll(opt, l, strings.Split(*open, ",")); code != 0 {
			return code
		}
	}

	write := markup.WriteDocument
	if *fragment {
		write = markup.WriteFragment
	}
	if *out == "" {
		if err := write(opt.Stdout, l); err != nil {
			ui.Fail(opt.Stderr, err.Error())
			return 1
		}
		return 0
	}

	f, err := os.Create(*out)
	if err != nil {
		ui.Fail(opt.Stderr, fmt.Sprintf("create file: %v", err))
		return 1
	}
	if err := write(f, l); err != nil {
		f.Close()
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	if err := f.Close(); err != nil {
		ui.Fail(opt.Stderr, fmt.Sprintf("close file: %v", err))
		return 1
	}
	opt.Logger.Info("wrote html", "path", *out, "entries", l.Len(), "expanded", len(l.ExpandedIDs()))
	ui.OK(opt.Stdout, "wrote "+*out)
	return 0
}

func doTUI(ctx context.Context, opt Options) int {
	l, err := loadList(ctx, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	if err := ui.Run(ctx, l, ui.WithLogger(opt.Logger)); err != nil {
		if errors.Is(err, ui.ErrNoTTY) {
			ui.Fail(opt.Stderr, err.Error())
			ui.Hint(opt.Stderr, "use `faq show` or `faq html` when output is not a terminal")
			return 2
		}
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doCheck(ctx context.Context, opt Options) int {
	l, err := loadList(ctx, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	ui.OK(opt.Stdout, fmt.Sprintf("%d entries, ids unique", l.Len()))
	return 0
}

func doExport(ctx context.Context, opt Options, path string) int {
	entries, err := content.Load(ctx, content.FromPath(opt.Config.ContentPath))
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		return 1
	}
	if err := content.Save(path, entries); err != nil {
		if errors.Is(err, content.ErrUnsupportedFormat) {
			ui.Fail(opt.Stderr, "export: "+err.Error())
			return 2
		}
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Stdout, "exported "+path)
	return 0
}
