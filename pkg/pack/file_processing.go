package pack

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrInvalidUTF8 is returned when a file's bytes are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// ErrNotRegular is returned for paths that exist but are not regular files.
var ErrNotRegular = errors.New("not a regular file")

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// readText reads a whole file as UTF-8 text with line endings normalised to "\n".
// The file handle is released before returning.
func readText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode %s: %w", filePath, ErrInvalidUTF8)
	}
	return newlineReplacer.Replace(string(data)), nil
}

// ReadRules loads the rules document. It returns nil when the document does
// not exist; a document that exists but cannot be read yields a segment
// carrying the error.
func ReadRules(cfg Config, logger *zap.Logger) *Segment {
	if logger == nil {
		logger = zap.NewNop()
	}
	rulesPath := cfg.RulesPath()

	info, err := os.Stat(rulesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Rules file not found", zap.String("path", rulesPath))
		} else {
			logger.Warn("Failed to stat rules file", zap.String("path", rulesPath), zap.Error(err))
		}
		return nil
	}
	if !info.Mode().IsRegular() {
		logger.Warn("Rules path is not a regular file", zap.String("path", rulesPath), zap.Stringer("mode", info.Mode()))
		return &Segment{Kind: RulesSegment, Err: ErrNotRegular}
	}

	content, err := readText(rulesPath)
	if err != nil {
		logger.Warn("Failed to read rules file", zap.String("path", rulesPath), zap.Error(err))
		return &Segment{Kind: RulesSegment, Err: err}
	}

	logger.Debug("Read rules file",
		zap.String("path", rulesPath),
		zap.Int("contentSizeBytes", len(content)))
	return &Segment{Kind: RulesSegment, Content: content}
}

// ReadFileSegment reads one matched file into a segment. Read and decode
// failures are kept on the segment and never returned.
func ReadFileSegment(filePath, relPath string, logger *zap.Logger) Segment {
	if logger == nil {
		logger = zap.NewNop()
	}
	seg := Segment{Kind: FileSegment, Path: relPath}

	content, err := readText(filePath)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("filePath", filePath), zap.Error(err))
		seg.Err = err
		return seg
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(content)))
	seg.Content = content
	return seg
}
