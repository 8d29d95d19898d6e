package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hdltools/vlin/formatter"
	"github.com/hdltools/vlin/internal"
	tt "github.com/hdltools/vlin/internal/types"
	"github.com/hdltools/vlin/lint"
)

var (
	ignoreRules    string
	ignorePaths    string
	lintJSONOutput bool
	outPath        string
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run the normal lint process",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := lint.New(".", cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if ignoreRules != "" {
			rules := strings.Split(ignoreRules, ",")
			for _, rule := range rules {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		if ignorePaths != "" {
			paths := strings.Split(ignorePaths, ",")
			for _, path := range paths {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		runNormalLintProcess(ctx, logger, engine, args, lintJSONOutput, outPath)
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	lintCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	lintCmd.Flags().BoolVar(&lintJSONOutput, "json", false, "Output results in JSON format")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path (default: stdout)")
}

func runNormalLintProcess(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, jsonOutput bool, outPath string) {
	issues, err := lint.ProcessFiles(ctx, logger, engine, paths, lint.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	if jsonOutput {
		if err := printIssuesJSON(issues, outPath); err != nil {
			logger.Error("Error writing JSON output", zap.Error(err))
			os.Exit(1)
		}
	} else {
		printIssues(logger, issues)
	}

	if len(issues) > 0 {
		os.Exit(1)
	}
}

func printIssues(logger *zap.Logger, issues []tt.Issue) {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		fileIssues := issuesByFile[filename]
		sort.Slice(fileIssues, func(i, j int) bool {
			if fileIssues[i].Start.Line != fileIssues[j].Start.Line {
				return fileIssues[i].Start.Line < fileIssues[j].Start.Line
			}
			return fileIssues[i].Start.Column < fileIssues[j].Start.Column
		})

		sourceCode, err := internal.ReadSourceCode(filename)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
			continue
		}
		output := formatter.GenerateFormattedIssue(fileIssues, sourceCode)
		fmt.Println(output)
	}
}

func printIssuesJSON(issues []tt.Issue, outPath string) error {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	d, err := json.MarshalIndent(issuesByFile, "", "  ")
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, d, 0o644)
	}

	fmt.Println(string(d))
	return nil
}
