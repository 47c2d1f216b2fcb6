package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the default path to the log file.
// If STAGELIST_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.stagelist/logs/stagelist.log
func GetLogFilePath() string {
	if customPath := os.Getenv("STAGELIST_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "stagelist.log"
	}

	return filepath.Join(homeDir, ".stagelist", "logs", "stagelist.log")
}
