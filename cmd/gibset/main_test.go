package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/gibset/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("GIBSET_SEED", "")
	t.Setenv("GIBSET_FORMAT", "")
	t.Setenv("GIBSET_DB", "")
	t.Setenv("GIBSET_CONFIG", "")
}

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runArgs(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, UI{In: strings.NewReader(stdin), Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestGenerateExample(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")

	code, out, errOut := runArgs(t, "", path)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, errOut)

	lines := outputLines(out)
	require.Len(t, lines, 4)
	assert.Equal(t, `"The cat sat.",1`, lines[0])
	assert.Equal(t, `"Dogs bark loudly.",1`, lines[2])

	v := vocab.Vocabulary{"bark", "cat", "dogs", "loudly", "sat", "the"}
	for _, line := range []string{lines[1], lines[3]} {
		require.True(t, strings.HasPrefix(line, `"`))
		require.True(t, strings.HasSuffix(line, `",0`))

		text := strings.TrimSuffix(strings.TrimPrefix(line, `"`), `",0`)
		words := strings.Split(text, " ")
		require.NotEmpty(t, words)
		for i, w := range words {
			if i == 0 {
				w = strings.ToLower(w)
			}
			assert.True(t, v.Contains(w), "word %q of %q", w, text)
		}
	}
}

func TestGenerateLabelsAlternate(t *testing.T) {
	clearEnv(t)
	corpus := "One fish two fish.\nRed fish, blue fish.\nThis one has a little star.\nSay! What a lot of fish there are.\nYes.\n"
	path := writeCorpus(t, corpus)

	code, out, _ := runArgs(t, "", "generate", "-seed", "3", path)
	require.Equal(t, 0, code)

	lines := outputLines(out)
	require.Len(t, lines, 2*5)
	for i, line := range lines {
		if i%2 == 0 {
			assert.True(t, strings.HasSuffix(line, ",1"), line)
		} else {
			assert.True(t, strings.HasSuffix(line, ",0"), line)
		}
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The quick brown fox jumps over the lazy dog.\nPack my box with five dozen liquor jugs.\n")

	_, out1, _ := runArgs(t, "", "generate", "-seed", "11", path)
	_, out2, _ := runArgs(t, "", "generate", "-s", "11", path)
	assert.Equal(t, out1, out2)

	_, out3, _ := runArgs(t, "", "generate", "-seed", "12", path)
	l1, l3 := outputLines(out1), outputLines(out3)
	require.Len(t, l3, len(l1))
	for i := 0; i < len(l1); i += 2 {
		assert.Equal(t, l1[i], l3[i], "real sentences do not depend on the seed")
	}
}

func TestGenerateStdin(t *testing.T) {
	clearEnv(t)

	code, out, _ := runArgs(t, "The cat sat.\nDogs bark loudly.\n", "generate", "-")
	require.Equal(t, 0, code)
	assert.Len(t, outputLines(out), 4)
}

func TestGenerateJSON(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\n")

	code, out, _ := runArgs(t, "", "generate", "-format", "json", "-seed", "1", path)
	require.Equal(t, 0, code)

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, `{"text":"The cat sat.","label":1}`, lines[0])
	assert.True(t, strings.HasSuffix(lines[1], `"label":0}`))
}

func TestGenerateConfigFileAndFlagOverride(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")
	cfgPath := filepath.Join(t.TempDir(), "gibset.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 5\nformat: json\n"), 0644))

	_, out, _ := runArgs(t, "", "generate", "-config", cfgPath, path)
	assert.True(t, strings.HasPrefix(out, `{"text"`))

	_, out, _ = runArgs(t, "", "generate", "-config", cfgPath, "-format", "csv", path)
	assert.True(t, strings.HasPrefix(out, `"The cat sat.",1`))

	_, withSeed, _ := runArgs(t, "", "generate", "-format", "csv", "-seed", "5", path)
	assert.Equal(t, withSeed, out, "seed comes from the config file")
}

func TestGenerateProgress(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")

	var out bytes.Buffer
	code := run([]string{"generate", "-progress", path}, UI{In: strings.NewReader(""), Out: &out, Err: io.Discard})
	require.Equal(t, 0, code)
	assert.Len(t, outputLines(out.String()), 4)
}

func TestGenerateVerboseLogsOnStderr(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")

	code, out, errOut := runArgs(t, "", "generate", "-verbose", "-seed", "9", path)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "corpus loaded")
	assert.Contains(t, errOut, `"average_length": 14`)
	assert.NotContains(t, out, "corpus loaded")
}

func TestGenerateErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing argument", nil, "no command provided"},
		{"missing file", []string{filepath.Join(dir, "nope.txt")}, "IO error"},
		{"empty file", []string{writeCorpus(t, "")}, "no sentences"},
		{"empty vocabulary", []string{writeCorpus(t, ".\n \n")}, "empty vocabulary"},
		{"bad format", []string{"generate", "-format", "xml", writeCorpus(t, "a\n")}, "allowed values"},
		{"too many arguments", []string{"generate", "a.txt", "b.txt"}, "exactly one argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runArgs(t, "", tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestGenerateThenCheck(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nShe said \"no\", twice.\nDogs bark loudly.\n")

	code, out, _ := runArgs(t, "", path)
	require.Equal(t, 0, code)

	code, checked, errOut := runArgs(t, out, "check", "-")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Num records 6, valid 3, invalid 3\n", checked)
}

func TestCheckRejectsBadDatasets(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name, in, want string
	}{
		{"swapped labels", "\"Cat\",0\n\"The cat.\",1\n", "line 1"},
		{"missing gibberish", "\"The cat.\",1\n\"Cat\",0\n\"A dog.\",1\n", "no gibberish counterpart"},
		{"malformed", "\"The cat.\",1\nCat,0\n", "malformed record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runArgs(t, tt.in, "check", "-")
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestGenerateDBAndRuns(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")
	db := filepath.Join(t.TempDir(), "dataset.sqlite")

	code, out, errOut := runArgs(t, "", "generate", "-seed", "21", "-db", db, path)
	require.Equal(t, 0, code, errOut)

	code, listed, errOut := runArgs(t, "", "runs", db)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, listed, "📖 1 "+path+" seed=21 avg=14 vocab=6 records=4")

	code, stored, errOut := runArgs(t, "", "runs", "-run", "1", db)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, out, stored)

	code, _, errOut = runArgs(t, "", "runs", "-run", "2", db)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "run not found")
}

func TestRunsMissingDB(t *testing.T) {
	code, _, errOut := runArgs(t, "", "runs", filepath.Join(t.TempDir(), "none.sqlite"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "database not found")
}

func TestStatCommand(t *testing.T) {
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")

	code, out, _ := runArgs(t, "", "stat", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "Num sentences 2, num chars 29, average length 14\nNum tokens 6, vocabulary size 6\n", out)

	code, _, errOut := runArgs(t, "", "stat", writeCorpus(t, ""))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no sentences")
}

func TestVocabCommand(t *testing.T) {
	code, out, _ := runArgs(t, "The cat sat.\nDogs bark loudly.\n", "vocab", "-")
	require.Equal(t, 0, code)
	assert.Equal(t, "bark\ncat\ndogs\nloudly\nsat\nthe\n", out)
}

func TestTryRejectsStdin(t *testing.T) {
	code, _, errOut := runArgs(t, "", "try", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "must be a file")
}

func TestHelp(t *testing.T) {
	code, out, _ := runArgs(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "generate")

	code, out, _ = runArgs(t, "", "help", "generate")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "-seed")

	code, out, _ = runArgs(t, "", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Commands:")
}

func TestVersion(t *testing.T) {
	code, out, _ := runArgs(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "gibset version dev (commit: none)\n", out)
}

func TestBash(t *testing.T) {
	code, out, _ := runArgs(t, "", "bash")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "complete -F _gibset_autocomplete gibset")
}

func TestGenerateDirectoryStore(t *testing.T) {
	clearEnv(t)
	path := writeCorpus(t, "The cat sat.\nDogs bark loudly.\n")
	dir := t.TempDir()

	code, out, errOut := runArgs(t, "", "generate", "-seed", "4", "-db", dir, path)
	require.Equal(t, 0, code, errOut)

	assert.FileExists(t, filepath.Join(dir, "1.csv"))
	assert.FileExists(t, filepath.Join(dir, "1.json"))

	code, stored, errOut := runArgs(t, "", "runs", "-run", "1", dir)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, out, stored)
}
