package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textra/pkg/extractor"
	"textra/pkg/filetype"
	"textra/pkg/lang"
	"textra/pkg/registry"
	"textra/pkg/utils"
)

var (
	// Output
	jsonOutput bool
	outputFile string
	verbose    bool

	// Extraction
	mimeType   string
	pluginDir  string
	detectLang bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "textra <file>",
	Short: "Extract normalized plain text from documents",
	Long: `Textra extracts plain text from PDF, DOCX, CSV, TXT and image files
behind one uniform interface. Scanned PDFs and images go through OCR;
additional formats can be added at runtime via plugins.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		utils.SetVerbose(verbose)
		if logFile != "" {
			if err := utils.InitLogger(logFile); err != nil {
				utils.LogWarning("cannot open log file: %v", err)
			}
			defer utils.CloseLogger()
		}

		reg := registry.Default()
		if pluginDir != "" {
			n := reg.LoadFromDirectory(pluginDir)
			utils.LogDebug("loaded %d plugin(s) from %s", n, pluginDir)
		}

		factory := extractor.New(reg)
		ext, err := factory.Select(args[0], mimeType)
		if err != nil {
			exitWithError(args[0], err)
		}
		result, err := ext.Extract(args[0])
		if err != nil {
			exitWithError(args[0], err)
		}

		var out string
		if jsonOutput {
			raw, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				exitWithError(args[0], err)
			}
			out = string(raw)
		} else {
			var lines []string
			if verbose {
				lines = append(lines,
					fmt.Sprintf("File: %s", args[0]),
					fmt.Sprintf("Type: %s", result.FileType),
					fmt.Sprintf("OCR Used: %v", result.OCRUsed),
					fmt.Sprintf("Pages: %d", len(result.Pages)),
				)
				if detectLang {
					if info, ok := lang.Detect(result.Text, 0); ok {
						lines = append(lines, fmt.Sprintf("Language: %s (%.2f)", info.Language, info.Confidence))
					}
				}
				lines = append(lines, strings.Repeat("-", 40))
			}
			lines = append(lines, result.Text)
			out = strings.Join(lines, "\n")
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(out), 0o644); err != nil {
				exitWithError(args[0], err)
			}
			if verbose {
				utils.LogSuccess("results written to %s", outputFile)
			}
		} else {
			fmt.Println(out)
		}
	},
}

// exitWithError prints a short one-liner for expected failures and a generic
// message for everything else; the detail shows under --verbose.
func exitWithError(path string, err error) {
	var (
		unsupportedExt  *filetype.UnsupportedTypeError
		unsupportedMime *filetype.UnsupportedMimeError
		noExtractor     *extractor.NoExtractorError
	)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
	case errors.As(err, &unsupportedExt), errors.As(err, &unsupportedMime), errors.As(err, &noExtractor):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	default:
		fmt.Fprintln(os.Stderr, "Error: extraction failed")
		if verbose {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
	}
	os.Exit(1)
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.Flags().StringVar(&mimeType, "mime", "", "MIME type hint (takes precedence over the extension)")
	rootCmd.Flags().BoolVar(&detectLang, "lang", false, "Detect the language of the extracted text (with -v)")
	rootCmd.PersistentFlags().StringVar(&pluginDir, "plugin-dir", "", "Directory of extractor plugins (*.so) to load")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
