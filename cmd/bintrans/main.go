package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/vikdevelop/bintrans/codec"
	"github.com/vikdevelop/bintrans/history"
	"github.com/vikdevelop/bintrans/locale"
	"github.com/vikdevelop/bintrans/settings"
	"github.com/vikdevelop/bintrans/translator"
)

const usage = `Usage:
  bintrans [flags] <text>              translate text or binary
  bintrans [flags] translate <text>    same as above
  bintrans [flags] history list        show previous inputs
  bintrans [flags] history remove <entry>...
  bintrans [flags] history path        print the history file location
  bintrans version

With no text argument the input is read from stdin.

Flags:
`

type app struct {
	cfg      translator.Config
	tr       *translator.Translator
	settings *settings.Store
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bintrans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "Path to config JSON file")
		dataDir    = fs.String("data-dir", "", "Directory holding the history file (overrides config)")
		localeName = fs.String("locale", "", "Message language, e.g. cs or de_DE.UTF-8 (overrides config)")
		localeDir  = fs.String("locale-dir", "", "Directory with <lang>.json catalogs layered over the built-in ones")
		mode       = fs.String("mode", "", "auto, encode or decode (overrides config)")
		matching   = fs.String("matching", "", "History matching: exact or legacy (overrides config)")
		strict     = fs.Bool("strict", false, "Reject binary input that is not a multiple of 8 digits")
		remember   = fs.Bool("remember", false, "Store -mode and -locale as defaults for later runs")
		quiet      = fs.Bool("quiet", false, "Do not print history warnings")
		verbose    = fs.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	overrides := translator.Config{
		History:   history.Config{Dir: *dataDir, Matching: *matching},
		Mode:      *mode,
		Locale:    *localeName,
		LocaleDir: *localeDir,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "strict" {
			overrides.Strict = strict
		}
	})

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	if err := a.configure(*configFile, &overrides); err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	if *remember {
		if err := a.rememberDefaults(&overrides); err != nil {
			logger.Warn("failed to save settings", "error", err)
		}
	}

	tr, err := translator.New(&a.cfg, translator.WithObserver(a.newObserver(logger, stderr, *quiet)))
	if err != nil {
		logger.Error("failed to create translator", "error", err)
		return 1
	}
	a.tr = tr

	if err := tr.Load(ctx); err != nil {
		logger.Error("failed to load history", "error", err)
		return 1
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return a.runTranslate(ctx, nil)
	}
	switch rest[0] {
	case "translate":
		return a.runTranslate(ctx, rest[1:])
	case "history":
		return a.runHistory(ctx, rest[1:])
	case "version":
		return a.runVersion()
	default:
		return a.runTranslate(ctx, rest)
	}
}

// configure layers defaults, remembered settings, the config file, the
// environment and flags, lowest precedence first.
func (a *app) configure(configFile string, flags *translator.Config) error {
	var explicit translator.Config
	if configFile != "" {
		fromFile, err := translator.ReadConfigFile(configFile)
		if err != nil {
			return err
		}
		explicit.Merge(fromFile)
	}
	fromEnv, err := translator.EnvConfig()
	if err != nil {
		return err
	}
	explicit.Merge(fromEnv)
	explicit.Merge(flags)

	cfg := translator.DefaultConfig()
	if explicit.ConfigDir != "" {
		cfg.ConfigDir = explicit.ConfigDir
	}

	if path := cfg.SettingsPath(); path != "" {
		st, err := settings.Open(path)
		if err != nil {
			return err
		}
		a.settings = st
		remembered := translator.Config{Locale: st.String(settings.KeyLocale, "")}
		if mode := st.String(settings.KeyMode, ""); mode != "" {
			if _, err := codec.ParseMode(mode); err == nil {
				remembered.Mode = mode
			}
		}
		cfg.Merge(&remembered)
	}

	cfg.Merge(&explicit)
	a.cfg = cfg
	return nil
}

func (a *app) rememberDefaults(flags *translator.Config) error {
	if a.settings == nil {
		return errors.New("no config directory")
	}
	if flags.Mode != "" {
		mode, err := codec.ParseMode(flags.Mode)
		if err != nil {
			return err
		}
		a.settings.SetString(settings.KeyMode, mode.String())
	}
	if flags.Locale != "" {
		a.settings.SetString(settings.KeyLocale, flags.Locale)
	}
	return a.settings.Save()
}

func (a *app) runTranslate(ctx context.Context, args []string) int {
	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			fmt.Fprintln(a.stderr, a.tr.Explain(err))
			return 1
		}
		input = strings.TrimRight(string(data), "\r\n")
	}

	p := a.tr.Printer()
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(a.stderr, p.Sprintf(locale.KeyTranslateEmpty))
		return 1
	}

	res, err := a.tr.Translate(ctx, input)
	if err != nil {
		fmt.Fprintln(a.stderr, a.tr.Explain(err))
		return 1
	}

	fmt.Fprintln(a.stdout, res.Output)
	return 0
}
