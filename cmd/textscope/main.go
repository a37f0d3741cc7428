// Package main provides the CLI entrypoint for textscope.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/textscope/internal/analyze"
	"github.com/verte-zerg/textscope/internal/config"
	"github.com/verte-zerg/textscope/internal/model"
	"github.com/verte-zerg/textscope/internal/report"
	"github.com/verte-zerg/textscope/internal/stoplist"
	"github.com/verte-zerg/textscope/internal/store"
	"github.com/verte-zerg/textscope/internal/tui"
)

const fallbackWidth = 80

var (
	optMinWordLength int
	optExcludeCommon bool
	optCaseSensitive bool
	optTopWords      int
	optStoplistLang  string
	optStoplistPath  string

	analyzeJSON  bool
	analyzeSave  bool
	analyzeLabel string

	historySince string
	historyLast  int
	historyLabel string
	historyID    int64

	stoplistLang  string
	stoplistForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textscope [file]",
		Short:         "Live text statistics and readability analyzer",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUICmd,
	}

	addAnalysisFlags(rootCmd)

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStoplistCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&optMinWordLength, "min-word-length", model.DefaultMinWordLength, "minimum word length for frequency ranking")
	cmd.Flags().BoolVar(&optExcludeCommon, "exclude-common", true, "exclude common function words from frequency ranking")
	cmd.Flags().BoolVar(&optCaseSensitive, "case-sensitive", false, "treat differently-cased words as distinct")
	cmd.Flags().IntVar(&optTopWords, "top-words", model.DefaultTopWordCount, "number of top words to report")
	cmd.Flags().StringVar(&optStoplistLang, "stoplist-lang", "", "language code of a downloaded stoplist")
	cmd.Flags().StringVar(&optStoplistPath, "stoplist-path", "", "path to a custom stoplist file")
}

func runTUICmd(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	initial := ""
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		initial = string(data)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	program := tea.NewProgram(tui.NewModel(opts, st, initial), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a file or stdin and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyzeCmd,
	}
	addAnalysisFlags(cmd)
	cmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the JSON encoding of the result")
	cmd.Flags().BoolVar(&analyzeSave, "save", false, "save the result to the snapshot history")
	cmd.Flags().StringVar(&analyzeLabel, "label", "", "label for the saved snapshot")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	stats := analyze.Text(text, opts)

	if analyzeSave {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		id, err := st.InsertSnapshot(context.Background(), time.Now(), analyzeLabel, stats)
		if err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		logErrf("saved snapshot #%d\n", id)
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		return report.RenderJSON(out, stats)
	}
	return report.Render(out, stats, terminalWidth())
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved snapshots",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N snapshots")
	cmd.Flags().StringVar(&historyLabel, "label", "", "filter by label")
	cmd.Flags().Int64Var(&historyID, "id", 0, "print the full report for one snapshot")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if historyID > 0 {
		snap, err := st.GetSnapshot(context.Background(), historyID)
		if err != nil {
			return fmt.Errorf("failed to load snapshot %d: %w", historyID, err)
		}
		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "Snapshot #%d (%s)\n\n", snap.ID, snap.CreatedAt.Format("2006-01-02 15:04")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return report.Render(out, snap.Stats, terminalWidth())
	}

	snapshots, err := st.ListSnapshots(context.Background(), model.HistoryFilter{
		Since: sinceTime,
		Last:  historyLast,
		Label: historyLabel,
	})
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), snapshots)
}

func newStoplistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stoplist",
		Short: "Download stopword lists",
		Args:  cobra.NoArgs,
		RunE:  runStoplistCmd,
	}
	cmd.Flags().StringVar(&stoplistLang, "lang", "", "language code or 'all' (default: en)")
	cmd.Flags().BoolVar(&stoplistForce, "force", false, "overwrite existing files")
	return cmd
}

func runStoplistCmd(_ *cobra.Command, _ []string) error {
	cacheDir := config.DefaultDatasetCacheDir()
	logErrln("Fetching stopwords-iso dataset...")
	dataset, err := stoplist.DownloadDataset(context.Background(), cacheDir)
	if err != nil {
		return fmt.Errorf("failed to download stopword dataset: %w", err)
	}
	if dataset.Cached {
		logErrln("Using cached dataset")
	} else {
		logErrln("Downloaded dataset")
	}

	availableLangs, err := stoplist.ListLanguages(dataset.Path)
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	langs, allRequested, err := resolveStoplistLangs(stoplistLang, availableLangs)
	if err != nil {
		return err
	}

	outDir := config.DefaultStoplistDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, langCode := range langs {
		outPath := filepath.Join(outDir, langCode+".txt")
		if !stoplistForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("stoplist already exists: %s (use --force to overwrite)", outPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat stoplist: %w", err)
			}
		}

		words, err := stoplist.ExtractWords(dataset.Path, langCode)
		if err != nil {
			if allRequested {
				logErrf("Skipping %s: %v\n", langCode, err)
				continue
			}
			return fmt.Errorf("failed to extract %s stoplist: %w", langCode, err)
		}
		if err := stoplist.WriteList(outPath, words); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logErrf("Wrote %s\n", outPath)
	}

	if err := stoplist.WriteAttribution(outDir); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	logErrln("Wrote ATTRIBUTION.txt")
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List downloaded stoplist languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	stoplistDir := config.DefaultStoplistDir()
	entries, err := os.ReadDir(stoplistDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no stoplists found, download with: textscope stoplist --lang <code>")
		}
		return fmt.Errorf("failed to read stoplist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		if name == "ATTRIBUTION.txt" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	if len(langs) == 0 {
		return fmt.Errorf("no stoplists found, download with: textscope stoplist --lang <code>")
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveOptions merges CLI flags, the TOML config and defaults into the
// analysis options. Flags win over config values; malformed values are
// clamped rather than rejected.
func resolveOptions(cmd *cobra.Command) (model.Options, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "min-word-length", &optMinWordLength, fileCfg.Analysis.MinWordLength)
	applyBoolConfig(cmd, "exclude-common", &optExcludeCommon, fileCfg.Analysis.ExcludeCommon)
	applyBoolConfig(cmd, "case-sensitive", &optCaseSensitive, fileCfg.Analysis.CaseSensitive)
	applyIntConfig(cmd, "top-words", &optTopWords, fileCfg.Analysis.TopWords)
	applyStringConfig(cmd, "stoplist-lang", &optStoplistLang, fileCfg.Analysis.StoplistLang)
	applyStringConfig(cmd, "stoplist-path", &optStoplistPath, fileCfg.Analysis.StoplistPath)

	opts := model.Options{
		MinWordLength:      optMinWordLength,
		ExcludeCommonWords: optExcludeCommon,
		CaseSensitive:      optCaseSensitive,
		TopWordCount:       optTopWords,
	}

	if optStoplistPath != "" {
		set, err := stoplist.LoadFile(optStoplistPath)
		if err != nil {
			return model.Options{}, fmt.Errorf("failed to load stoplist: %w", err)
		}
		opts.Stoplist = set
	} else if optStoplistLang != "" {
		path := config.DefaultStoplistPath(optStoplistLang)
		set, err := stoplist.LoadFile(path)
		if err != nil {
			return model.Options{}, stoplistLoadError(optStoplistLang, path, err)
		}
		opts.Stoplist = set
	}

	return opts.Normalize(), nil
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func resolveStoplistLangs(lang string, available []string) ([]string, bool, error) {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if lang == "" {
		return []string{"en"}, false, nil
	}
	if lang == "all" {
		return append([]string(nil), available...), true, nil
	}
	parts := strings.Split(lang, ",")
	requested := make([]string, 0, len(parts))
	availableSet := make(map[string]struct{}, len(available))
	for _, a := range available {
		availableSet[a] = struct{}{}
	}
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if _, ok := availableSet[part]; !ok {
			return nil, false, fmt.Errorf("unknown language %q (available: %s)", part, strings.Join(available, ", "))
		}
		requested = append(requested, part)
	}
	if len(requested) == 0 {
		return nil, false, fmt.Errorf("--lang must not be empty")
	}
	return requested, false, nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# textscope configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# min-word-length = %d    # Minimum word length for frequency ranking
# exclude-common = true   # Exclude common function words
# case-sensitive = false  # Treat differently-cased words as distinct
# top-words = %d          # Number of top words to report
# stoplist-lang = "en"    # Use a downloaded stoplist (see: textscope stoplist)
# stoplist-path = ""      # Path to a custom stoplist file
`,
		model.DefaultMinWordLength,
		model.DefaultTopWordCount,
	)
}

func stoplistLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load stoplist: %v", err),
		fmt.Sprintf("expected stoplist at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: textscope langs",
		fmt.Sprintf("Download: textscope stoplist --lang %s", lang),
		"Download all: textscope stoplist --lang all",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
