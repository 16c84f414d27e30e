package main

import (
	"log"
	"os"
	"strings"

	"ctxpack/cmd"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	logger := cmd.Logger()
	if err != nil {
		logger.Error("ctxpack execution failed", zap.Error(err))
		log.Printf("ctxpack: %v", err)
	}

	// Sync fails with "invalid argument" on pipes and character devices.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
