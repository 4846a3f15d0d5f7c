// =============================================================================
// Sales Analytics System - File Manager
// =============================================================================
//
// This module handles the file lifecycle around an analysis run:
//   - Ensuring the output and archive directories exist
//   - Generating report file names from a placeholder format
//   - Archiving processed input files with collision-safe names
//   - Writing the run summary log
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager manages the directories used by an analysis run.
type FileManager struct {
	outputDir  string
	archiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		outputDir:  outputDir,
		archiveDir: archiveDir,
	}
}

// EnsureDirectories creates the output and archive directories if they do
// not exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.outputDir, fm.archiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ArchiveInputFile moves a processed input file into the archive directory.
// The archived name carries a timestamp so repeated runs never collide.
// It returns the archive path.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	timestamp := time.Now().Format("20060102_150405")
	archivePath := filepath.Join(fm.archiveDir, fmt.Sprintf("%s_%s%s", name, timestamp, ext))

	// Rename first; fall back to copy+remove across file systems.
	if err := os.Rename(filePath, archivePath); err != nil {
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", filePath, err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove %s after archiving: %w", filePath, err)
		}
	}

	return archivePath, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName builds a file name from a placeholder format.
//
// Placeholders:
//
//	{uuid}      - A random UUID
//	{timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//	{date}      - Current date (YYYYMMDD)
//	{time}      - Current time (HHMMSS)
//
// The extension is appended when the format does not already carry it.
func GenerateOutputFileName(format, extension string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), strings.ToLower(extension)) {
		result += extension
	}

	return result
}

// =============================================================================
// RUN SUMMARY LOG
// =============================================================================

// RunSummary contains summary information about one analysis run.
type RunSummary struct {
	StartTime        time.Time
	EndTime          time.Time
	InputFile        string
	RawLines         int
	ParseDropped     int
	InvalidRecords   int
	FilteredByRegion int
	FilteredByAmount int
	AnalyzedRecords  int
	TotalRevenue     float64
	ReportFiles      []string
	ArchivePath      string
}

// WriteSummaryLog writes the run summary to a timestamped log file in the
// output directory and returns its path.
func (fm *FileManager) WriteSummaryLog(summary RunSummary) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	summaryPath := filepath.Join(fm.outputDir, fmt.Sprintf("run_summary_%s.txt", timestamp))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "Sales Analytics System - Run Summary\n")
	fmt.Fprintf(writer, "================================================================================\n\n")
	fmt.Fprintf(writer, "Run Information:\n")
	fmt.Fprintf(writer, "  Start Time:  %s\n", summary.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "  End Time:    %s\n", summary.EndTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "  Duration:    %s\n", duration.String())
	fmt.Fprintf(writer, "  Input File:  %s\n\n", summary.InputFile)
	fmt.Fprintf(writer, "Record Counts:\n")
	fmt.Fprintf(writer, "  Raw Lines:          %d\n", summary.RawLines)
	fmt.Fprintf(writer, "  Dropped At Parse:   %d\n", summary.ParseDropped)
	fmt.Fprintf(writer, "  Invalid:            %d\n", summary.InvalidRecords)
	fmt.Fprintf(writer, "  Filtered By Region: %d\n", summary.FilteredByRegion)
	fmt.Fprintf(writer, "  Filtered By Amount: %d\n", summary.FilteredByAmount)
	fmt.Fprintf(writer, "  Analyzed:           %d\n\n", summary.AnalyzedRecords)
	fmt.Fprintf(writer, "Total Revenue: %.2f\n\n", summary.TotalRevenue)

	if len(summary.ReportFiles) > 0 {
		fmt.Fprintf(writer, "Report Files:\n")
		for _, reportFile := range summary.ReportFiles {
			fmt.Fprintf(writer, "  %s\n", reportFile)
		}
		fmt.Fprintf(writer, "\n")
	}

	if summary.ArchivePath != "" {
		fmt.Fprintf(writer, "Input Archived To: %s\n\n", summary.ArchivePath)
	}

	fmt.Fprintf(writer, "================================================================================\n")
	fmt.Fprintf(writer, "End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
