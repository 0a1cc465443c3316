package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"generate",
	"stat",
	"vocab",
	"try",
	"check",
	"runs",
	"bash",
	"version",
	"help",
}

var commandFlags = map[string][]string{
	"generate": {"-seed", "-format", "-db", "-progress", "-config", "-verbose"},
	"try":      {"-seed"},
	"runs":     {"-run"},
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	completions := getCompletions(args)
	for _, c := range completions {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 1 {
		return nil
	}

	// args[0] is "gibset" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	var candidates []string
	switch {
	case cursorIndex == commandIndex:
		candidates = commands
	case cursorIndex > commandIndex && strings.HasPrefix(lastWord, "-"):
		candidates = commandFlags[args[commandIndex]]
	}

	var completions []string
	for _, c := range candidates {
		if strings.HasPrefix(c, lastWord) {
			completions = append(completions, c)
		}
	}
	return completions
}
