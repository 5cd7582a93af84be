package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"affixsplit/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, key := range []string{"AFFIXSPLIT_WORDLIST", "AFFIXSPLIT_VOCABULARY", "AFFIXSPLIT_FREQUENCY"} {
		t.Setenv(key, "")
	}
	t.Chdir(base)

	words := filepath.Join(base, "words.txt")
	vocab := filepath.Join(base, "vocabulary.tsv")
	freq := filepath.Join(base, "frequencies.tsv")
	testsupport.WriteLines(t, words, "laufen", "Häuser", "Kindergarten")
	testsupport.WriteLines(t, vocab, "kinder", "garten", "haus")
	testsupport.WriteLines(t, freq, "word\tcount", "chen\t120", "en\t9000", "er\t7000", "lein\t40")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		outputDir:  filepath.Join(base, "out"),
	}
	content := fmt.Sprintf(`[input]
word_list = %q
vocabulary = %q
frequency_list = %q

[output]
dir = %q

[logging]
level = "error"

[progress]
mode = "never"
`, words, vocab, freq, env.outputDir)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestRunWritesSuffixReport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, errOut, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "en:") {
		t.Fatalf("unexpected printed table: %q", out)
	}
	requireContains(t, errOut, "Wrote 4 suffixes")

	report := testsupport.ReadFile(t, filepath.Join(env.outputDir, "german_suffixes_with_frequency.txt"))
	if report != out {
		t.Fatalf("report and printed output differ: %q vs %q", report, out)
	}
}

func TestRunJSONWithSnapshotAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"run", "--json", "--snapshot", "--prefixes"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var payload runOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(payload.Suffixes) != 4 || payload.Suffixes[0].Affix != "en" {
		t.Fatalf("unexpected suffixes: %+v", payload.Suffixes)
	}
	if payload.Published == nil || payload.Published.Snapshot == "" {
		t.Fatalf("expected snapshot in published output: %+v", payload.Published)
	}
	if payload.Stats.StemGrew != 1 {
		t.Fatalf("unexpected stats: %+v", payload.Stats)
	}

	out, _, err = runCLI(t, []string{"show", "--limit", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "en:") {
		t.Fatalf("unexpected show output: %q", out)
	}

	out, _, err = runCLI(t, []string{"show", "--runs", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("show --runs: %v", err)
	}
	requireContains(t, out, `"kind": "prefix"`)
	requireContains(t, out, `"kind": "suffix"`)
}

func TestShowReadsReportFile(t *testing.T) {
	env := setupCLITestEnv(t)
	reportPath := filepath.Join(env.baseDir, "saved.txt")
	testsupport.WriteLines(t, reportPath, "chen:4.1", "en:6.3")

	out, _, err := runCLI(t, []string{"show", reportPath, "--table"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "╭")
	requireContains(t, out, "chen")
	requireContains(t, out, "6.3")

	if _, _, err := runCLI(t, []string{"show", reportPath, "--runs"}, env.configPath); err == nil {
		t.Fatal("expected --runs to require a snapshot")
	}
}

func TestSegmentCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"segment", "--json", "laufen", "Kindergarten"}, env.configPath)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	var analyses []map[string]any
	if err := json.Unmarshal([]byte(out), &analyses); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(analyses) != 2 {
		t.Fatalf("unexpected analyses: %v", analyses)
	}
	if analyses[0]["snowball_stem"] != "lauf" || analyses[0]["cistem_stem"] != "lauf" || analyses[0]["diff"] != "en" {
		t.Fatalf("unexpected laufen analysis: %v", analyses[0])
	}
	requireContains(t, out, `"kinder"`)

	out, _, err = runCLI(t, []string{"segment", "--no-compound", "Häuser"}, env.configPath)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	requireContains(t, out, "häu | ser")
	requireContains(t, out, " hau ")
	requireContains(t, out, "stem_grew")
}

func TestRunHelpDocumentsFrequencyList(t *testing.T) {
	out, _, err := runCLI(t, []string{"run", "--help"}, "")
	if err != nil {
		t.Fatalf("run --help: %v", err)
	}
	requireContains(t, out, "plain word list also needs a word<TAB>count frequency list")
	requireContains(t, out, "required for plain word lists")
}

func TestRunRequiresInputs(t *testing.T) {
	env := setupCLITestEnv(t)
	empty := filepath.Join(env.baseDir, "empty.toml")
	if err := os.WriteFile(empty, []byte("[progress]\nmode = \"never\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCLI(t, []string{"run"}, empty)
	if err == nil {
		t.Fatal("expected error without inputs")
	}
	requireContains(t, err.Error(), "input.word_list")
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	words := filepath.Join(env.baseDir, "other.txt")
	testsupport.WriteLines(t, words, "Kindchen")
	outDir := filepath.Join(env.baseDir, "elsewhere")

	_, _, err := runCLI(t, []string{"run", "--words", words, "--output-dir", outDir, "--quiet"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "german_suffixes_with_frequency.txt")); err != nil {
		t.Fatalf("expected report in overridden output dir: %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
