package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	info    = color.New(color.FgCyan).FprintfFunc()
	success = color.New(color.FgGreen).FprintfFunc()
	warning = color.New(color.FgYellow).FprintfFunc()
	errorc  = color.New(color.FgRed).FprintfFunc()
	debug   = color.New(color.FgHiBlack).FprintfFunc()

	// Bold for emphasis in console output.
	Bold = color.New(color.Bold).SprintFunc()

	logFile *os.File
	verbose bool
)

// SetVerbose enables debug output on the console.
func SetVerbose(v bool) { verbose = v }

// InitLogger opens an append-only log file. Console output continues
// regardless of whether a file is configured.
func InitLogger(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = f
	return nil
}

// CloseLogger closes the log file if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func logToFile(level string, msg string) {
	if logFile != nil {
		ts := time.Now().Format("2006/01/02 15:04:05")
		fmt.Fprintf(logFile, "%s [%s] %s\n", ts, level, strings.TrimSpace(msg))
	}
}

func LogInfo(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("INFO", msg)
	info(os.Stderr, "[*] %s\n", msg)
}

func LogSuccess(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("SUCCESS", msg)
	success(os.Stderr, "[+] %s\n", msg)
}

func LogWarning(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("WARNING", msg)
	warning(os.Stderr, "[!] %s\n", msg)
}

func LogError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("ERROR", msg)
	errorc(os.Stderr, "[-] %s\n", msg)
}

func LogDebug(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("DEBUG", msg)
	if verbose {
		debug(os.Stderr, "[DEBUG] %s\n", msg)
	}
}
