package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/gibset/config"
	"github.com/revelaction/gibset/render"
)

// Option structs for subcommands that have flags
type GenerateOptions struct {
	config.Config

	ConfigPath string
	Verbose    bool
}

type TryOptions struct {
	Seed uint64
}

type RunsOptions struct {
	DB  string
	Run *int64 // nil = not set
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt64 implements flag.Value for optional integer flags
type optionalInt64 struct {
	value *int64
}

func (o *optionalInt64) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.FormatInt(*o.value, 10)
}

func (o *optionalInt64) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// parseFlags parses args with fs. Usage goes to ui.Out for -h and to ui.Err on
// parse errors.
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return err
	}

	return nil
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("gibset", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		err := errors.New("no command provided")
		fprintErr(ui.Err, err)
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, err
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

// parseGenerateArgs merges, in increasing priority: defaults, the -config
// file, GIBSET_* environment variables and the command line flags.
func parseGenerateArgs(args []string, ui UI) (GenerateOptions, string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts GenerateOptions
	var seed uint64
	format := render.Defaultformat
	var db string
	var progress bool

	fs.Uint64Var(&seed, "seed", 0, "Seed of the gibberish generator (0 for a random seed)")
	fs.Uint64Var(&seed, "s", 0, "alias for -seed")

	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &format}
	fs.Var(formatFlag, "format", "Output format: csv (\"<text>\",<label> lines) or json (JSON lines)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.StringVar(&db, "db", "", "Also store the dataset in this SQLite file or existing directory")
	fs.BoolVar(&progress, "progress", false, "Show a progress bar on stderr")
	fs.BoolVar(&progress, "p", false, "alias for -progress")

	fs.StringVar(&opts.ConfigPath, "config", os.Getenv("GIBSET_CONFIG"), "Path to a YAML config file")
	fs.StringVar(&opts.ConfigPath, "c", os.Getenv("GIBSET_CONFIG"), "alias for -config")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log diagnostics on stderr")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s generate [options] <corpus_file|->\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print every corpus sentence labeled 1, each followed by a gibberish sentence labeled 0.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("generate command needs exactly one argument: <corpus_file>")
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return opts, "", err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed", "s":
			cfg.Seed = seed
		case "format", "f":
			cfg.Format = format
		case "db":
			cfg.DB = db
		case "progress", "p":
			cfg.Progress = progress
		}
	})

	opts.Config = cfg
	return opts, fs.Arg(0), nil
}

// parseCorpusArgs parses the commands that take a single corpus argument and
// no flags.
func parseCorpusArgs(name, description string, args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s %s <corpus_file|->\n", os.Args[0], name)
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  %s\n", description)
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", fmt.Errorf("%s command needs exactly one argument: <corpus_file>", name)
	}

	return fs.Arg(0), nil
}

func parseTryArgs(args []string, ui UI) (TryOptions, string, error) {
	fs := flag.NewFlagSet("try", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts TryOptions
	fs.Uint64Var(&opts.Seed, "seed", 0, "Seed of the gibberish generator (0 for a random seed)")
	fs.Uint64Var(&opts.Seed, "s", 0, "alias for -seed")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s try [options] <corpus_file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive mode and generate gibberish sentences on demand.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("try command needs exactly one argument: <corpus_file>")
	}

	return opts, fs.Arg(0), nil
}

func parseCheckArgs(args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s check <dataset_file|->\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Verify a csv dataset: every line parses and labels alternate 1, 0.\n")
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", errors.New("check command needs exactly one argument: <dataset_file>")
	}

	return fs.Arg(0), nil
}

func parseRunsArgs(args []string, ui UI) (RunsOptions, error) {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts RunsOptions
	var runOpt optionalInt64
	fs.Var(&runOpt, "run", "Print the records of this run as csv")
	fs.Var(&runOpt, "r", "alias for -run")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s runs [options] <sqlite_file|dir>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the datasets stored with generate -db, or print one of them.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("runs command needs exactly one argument: <sqlite_file|dir>")
	}

	opts.DB = fs.Arg(0)
	opts.Run = runOpt.value

	if _, err := os.Stat(opts.DB); err != nil {
		return opts, fmt.Errorf("database not found: %s", opts.DB)
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	return parseFlags(fs, args, ui)
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s <corpus_file>\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "       %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Labeled dataset of real and gibberish sentences for text classifiers\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  generate  Print the labeled dataset of a corpus (default).\n")
		_, _ = fmt.Fprintf(output, "  stat      Show statistics of a corpus.\n")
		_, _ = fmt.Fprintf(output, "  vocab     Print the vocabulary of a corpus.\n")
		_, _ = fmt.Fprintf(output, "  try       Enter interactive mode.\n")
		_, _ = fmt.Fprintf(output, "  check     Verify a csv dataset.\n")
		_, _ = fmt.Fprintf(output, "  runs      List or print stored datasets.\n")
		_, _ = fmt.Fprintf(output, "  bash      Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
