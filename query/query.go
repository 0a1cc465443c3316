package query

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/gibset/gibberish"
	"github.com/revelaction/gibset/vocab"
)

const (
	completionThreshold = 2

	cmdVocab = "vocab"
	cmdQuit  = "quit"
)

type action int

const (
	actionGenerate action = iota
	actionVocab
	actionQuit
)

// Handler is an interactive prompt producing gibberish sentences on demand.
type Handler struct {
	Vocabulary    vocab.Vocabulary
	Generator     *gibberish.Generator
	AverageLength int
	Out           io.Writer
}

func NewHandler(v vocab.Vocabulary, g *gibberish.Generator, avg int, out io.Writer) *Handler {
	return &Handler{
		Vocabulary:    v,
		Generator:     g,
		AverageLength: avg,
		Out:           out,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintf(h.Out, "🔑 Enter: sentence of %d chars, <n>: sentence of n chars, %s, 🔧 %s\n", h.AverageLength, cmdVocab, cmdQuit)

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("gibset try"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		history = append(history, in)
		if done := h.Eval(in); done {
			return nil
		}
	}
}

// Eval runs one prompt line and reports whether the session is over.
func (h *Handler) Eval(in string) bool {
	act, target, err := h.parse(in)
	if err != nil {
		fmt.Fprintf(h.Out, "❌ %s\n", err)
		return false
	}

	switch act {
	case actionQuit:
		return true
	case actionVocab:
		fmt.Fprintf(h.Out, "📖 %d words\n", h.Vocabulary.Len())
	default:
		s := h.Generator.Generate(target)
		fmt.Fprintf(h.Out, "✍  %s (%d)\n", s, len([]rune(s)))
	}

	return false
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.complete(in.TextBeforeCursor())
	}
}

func (h *Handler) complete(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if len(befCursor) < completionThreshold {
		return s
	}

	commands := []prompt.Suggest{
		{Text: cmdVocab, Description: "📖 vocabulary size"},
		{Text: cmdQuit, Description: "🔧 exit"},
		{Text: strconv.Itoa(h.AverageLength), Description: "average sentence length"},
	}

	return prompt.FilterHasPrefix(commands, befCursor, true)
}

func (h *Handler) parse(in string) (action, int, error) {
	in = strings.TrimSpace(in)

	switch in {
	case "":
		return actionGenerate, h.AverageLength, nil
	case cmdQuit:
		return actionQuit, 0, nil
	case cmdVocab:
		return actionVocab, 0, nil
	}

	target, err := strconv.Atoi(in)
	if err != nil {
		return actionGenerate, 0, fmt.Errorf("not a length or command: %q", in)
	}

	if target < 0 {
		return actionGenerate, 0, errors.New("length must not be negative")
	}

	return actionGenerate, target, nil
}
