package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"textra/pkg/batch"
	"textra/pkg/registry"
	"textra/pkg/utils"
)

var (
	batchWorkers    int
	batchExtensions []string
	batchSkipDupes  bool
	batchOutDir     string
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract text from every supported file under a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		utils.SetVerbose(verbose)

		reg := registry.Default()
		if pluginDir != "" {
			n := reg.LoadFromDirectory(pluginDir)
			utils.LogDebug("loaded %d plugin(s) from %s", n, pluginDir)
		}

		runner := batch.NewRunner(batch.Config{
			Workers:        batchWorkers,
			Extensions:     batchExtensions,
			SkipDuplicates: batchSkipDupes,
		}, nil, reg)

		report, err := runner.Run(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, entry := range report.Entries {
			if entry.Err != nil {
				utils.LogError("%s: %v", entry.Path, entry.Err)
				continue
			}
			if batchOutDir != "" {
				if err := writeEntry(batchOutDir, args[0], entry.Path, entry.Result.Text); err != nil {
					utils.LogError("write %s: %v", entry.Path, err)
				}
				continue
			}
			fmt.Printf("==> %s\n%s\n", entry.Path, entry.Result.Text)
		}

		utils.LogInfo("batch done: %d ok, %d failed, %d duplicates skipped",
			report.Succeeded, report.Failed, report.Skipped)
		if report.Failed > 0 {
			os.Exit(1)
		}
	},
}

// writeEntry mirrors the source tree under outDir, one .txt per document.
func writeEntry(outDir, root, path, text string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	dest := filepath.Join(outDir, rel+".txt")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, []byte(text), 0o644)
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Concurrent extractions")
	batchCmd.Flags().StringSliceVar(&batchExtensions, "ext", nil, "Only extract these extensions (e.g. .pdf,.txt)")
	batchCmd.Flags().BoolVar(&batchSkipDupes, "skip-duplicates", false, "Skip files with identical content")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Write one .txt per document under this directory")
	rootCmd.AddCommand(batchCmd)
}
