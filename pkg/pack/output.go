// File: pkg/pack/output.go
package pack

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// WriteOutput overwrites outputPath with text encoded as UTF-8.
func WriteOutput(outputPath, text string, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing aggregate to output file", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(text); err != nil {
		logger.Error("Failed to write aggregate", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
