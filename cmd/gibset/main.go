package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Set at build time with -ldflags "-X main.BuildTag=... -X main.BuildCommit=..."
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the input and output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	os.Exit(run(os.Args[1:], ui))
}

// run executes the command line and returns the process exit status.
func run(args []string, ui UI) int {
	cmd, cmdArgs, err := parseMainArgs(args, ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if err := runCommand(cmd, cmdArgs, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fprintErr(ui.Err, err)
		return 1
	}

	return 0
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "gibset: %v\n", err)
}

func runCommand(cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("gibset", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "generate":
		opts, path, err := parseGenerateArgs(args, ui)
		if err != nil {
			return err
		}
		return generateCommand(opts, path, ui)

	case "stat":
		path, err := parseCorpusArgs("stat", "Show statistics of a sentence corpus.", args, ui)
		if err != nil {
			return err
		}
		return statCommand(path, ui)

	case "vocab":
		path, err := parseCorpusArgs("vocab", "Print the vocabulary of a sentence corpus, one word per line.", args, ui)
		if err != nil {
			return err
		}
		return vocabCommand(path, ui)

	case "try":
		opts, path, err := parseTryArgs(args, ui)
		if err != nil {
			return err
		}
		return tryCommand(opts, path, ui)

	case "check":
		path, err := parseCheckArgs(args, ui)
		if err != nil {
			return err
		}
		return checkCommand(path, ui)

	case "runs":
		opts, err := parseRunsArgs(args, ui)
		if err != nil {
			return err
		}
		return runsCommand(opts, ui)

	case "bash":
		if err := parseBashArgs(args, ui); err != nil {
			return err
		}
		return bashCommand(ui)

	case "complete":
		completeArgs, err := parseCompleteArgs(args, ui)
		if err != nil {
			return err
		}
		return completeCommand(completeArgs, ui)

	case "version":
		return versionCommand(ui)
	}

	// Not a command: the argument is the corpus of a plain generate run.
	return runCommand("generate", append([]string{cmd}, args...), ui)
}
