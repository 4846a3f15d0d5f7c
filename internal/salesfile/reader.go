// =============================================================================
// Sales Analytics System - Sales File Reader
// =============================================================================
//
// This module reads the raw sales transaction log from disk. The legacy
// export process produces files in a handful of encodings, so the reader
// tries a prioritized list of encodings before giving up:
//   1. UTF-8
//   2. ISO-8859-1 (Latin-1)
//   3. Windows-1252
//
// The first line of the file is always a header row and is skipped. Blank
// lines are removed and every remaining line is whitespace-trimmed.
//
// ERROR HANDLING:
//   - A missing file fails with an error naming the attempted file.
//   - A file that none of the supported encodings can decode fails with
//     ErrUndecodable.
//
// =============================================================================

package salesfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when the input file cannot be decoded with any
// of the supported encodings.
var ErrUndecodable = errors.New("unable to decode file using supported encodings")

// ReadSalesLines reads a sales data file and returns its data lines.
//
// The header row is skipped, blank lines are dropped, and each returned line
// is trimmed. The order of lines is preserved.
func ReadSalesLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("sales data file %q was not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read sales data file %q: %w", path, err)
	}

	content, encodingName, err := decodeContent(data)
	if err != nil {
		return nil, fmt.Errorf("sales data file %q: %w", path, err)
	}

	slog.Debug("decoded sales data file",
		slog.String("path", path),
		slog.String("encoding", encodingName),
		slog.Int("bytes", len(data)))

	return splitDataLines(content), nil
}

// decodeContent decodes raw file bytes using the prioritized encoding list.
// It returns the decoded text and the name of the encoding that succeeded.
func decodeContent(data []byte) (string, string, error) {
	// UTF-8 first: the bytes are used as-is when they form valid UTF-8.
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	// Fall back to the single-byte encodings produced by older exporters.
	fallbacks := []struct {
		name    string
		charmap *charmap.Charmap
	}{
		{"iso-8859-1", charmap.ISO8859_1},
		{"windows-1252", charmap.Windows1252},
	}

	for _, fb := range fallbacks {
		decoded, err := fb.charmap.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), fb.name, nil
	}

	return "", "", ErrUndecodable
}

// splitDataLines splits decoded file content into trimmed data lines,
// skipping the header row and removing blank lines.
func splitDataLines(content string) []string {
	rawLines := strings.Split(content, "\n")

	// The first line is always the column header.
	if len(rawLines) > 0 {
		rawLines = rawLines[1:]
	}

	lines := make([]string, 0, len(rawLines))
	for _, raw := range rawLines {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
