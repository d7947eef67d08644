// Package scan implements the traversal, admission, and classification
// pipeline that turns a directory tree into an ordered set of admitted text
// files plus the records explaining every exclusion.
package scan

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/codefeedhq/codefeed/internal/types"
	"github.com/codefeedhq/codefeed/internal/utils"
)

// Skip messages mirror the limit values verbatim so the error stream explains
// which ceiling fired, not only that one did.
const (
	maximumFileLimitMessageFormat      = "Skipping file %s: Maximum file limit (%d) reached"
	totalSizeLimitMessageFormat        = "Skipping file %s: Total size limit (%s) reached"
	fileSizeLimitMessageFormat         = "Skipping file %s: File exceeds maximum size (%s)"
	readFailureMessageFormat           = "Error reading file %s: %v"
	classificationFailureMessageFormat = "Error checking if file is text %s: %v"
	invalidTextContentMessage          = "invalid UTF-8 data"
)

// Scanner consumes the traversal entry stream one entry at a time, applying
// admission and classification to files and recording one TreeLine per
// visited entry that stays visible. It owns the run's only mutable state.
type Scanner struct {
	rootPath string
	limiter  *Limiter
	tree     []types.TreeLine
	files    []types.AdmittedFile
	skips    []types.SkipRecord
}

// NewScanner constructs a Scanner for one run over rootPath.
func NewScanner(rootPath string, limits Limits) *Scanner {
	return &Scanner{
		rootPath: rootPath,
		limiter:  NewLimiter(limits),
	}
}

// Observe advances the scan by one traversal entry. Directories always render
// a tree line; files go through the admission pipeline. Every failure here is
// per-file and recoverable, so Observe never aborts the run.
func (scanner *Scanner) Observe(entry types.Entry) {
	if entry.Kind == types.EntryKindDirectory {
		scanner.tree = append(scanner.tree, types.TreeLine{
			Name:  entry.Name,
			Depth: entry.Depth,
			Kind:  entry.Kind,
		})
		return
	}
	scanner.observeFile(entry)
}

// observeFile runs one file through stat, admission, classification, and the
// content read. The limiter commit happens last: a candidate that fails after
// admission must leave the running totals exactly as they were.
func (scanner *Scanner) observeFile(entry types.Entry) {
	fileInformation, statError := os.Stat(entry.AbsolutePath)
	if statError != nil {
		scanner.recordSkip(entry, types.SkipReasonReadError,
			fmt.Sprintf(readFailureMessageFormat, entry.AbsolutePath, statError))
		return
	}
	candidateSizeBytes := fileInformation.Size()

	admitted, rejectReason := scanner.limiter.Admit(candidateSizeBytes)
	if !admitted {
		scanner.recordSkip(entry, rejectReason, scanner.limitMessage(entry, rejectReason))
		return
	}

	isText, classificationError := IsTextFile(entry.AbsolutePath)
	if classificationError != nil {
		scanner.recordSkip(entry, types.SkipReasonClassificationError,
			fmt.Sprintf(classificationFailureMessageFormat, entry.AbsolutePath, classificationError))
		return
	}
	if !isText {
		scanner.tree = append(scanner.tree, types.TreeLine{
			Name:   entry.Name,
			Depth:  entry.Depth,
			Kind:   entry.Kind,
			Binary: true,
		})
		return
	}

	contentBytes, readError := os.ReadFile(entry.AbsolutePath)
	if readError != nil {
		scanner.recordSkip(entry, types.SkipReasonReadError,
			fmt.Sprintf(readFailureMessageFormat, entry.AbsolutePath, readError))
		return
	}
	if !utf8.Valid(contentBytes) {
		scanner.recordSkip(entry, types.SkipReasonReadError,
			fmt.Sprintf(readFailureMessageFormat, entry.AbsolutePath, invalidTextContentMessage))
		return
	}

	scanner.limiter.Commit(candidateSizeBytes)
	scanner.files = append(scanner.files, types.AdmittedFile{
		RelativePath: entry.RelativePath,
		Content:      string(contentBytes),
	})
	scanner.tree = append(scanner.tree, types.TreeLine{
		Name:  entry.Name,
		Depth: entry.Depth,
		Kind:  entry.Kind,
	})
}

// limitMessage renders the human-readable line for a limit rejection. Size
// ceilings are formatted the same way throughout the error stream.
func (scanner *Scanner) limitMessage(entry types.Entry, rejectReason types.SkipReason) string {
	switch rejectReason {
	case types.SkipReasonFileCountLimit:
		return fmt.Sprintf(maximumFileLimitMessageFormat, entry.AbsolutePath, scanner.limiter.limits.MaxFileCount)
	case types.SkipReasonTotalSizeLimit:
		return fmt.Sprintf(totalSizeLimitMessageFormat, entry.AbsolutePath, utils.FormatSize(scanner.limiter.limits.MaxTotalSizeBytes))
	default:
		return fmt.Sprintf(fileSizeLimitMessageFormat, entry.AbsolutePath, utils.FormatSize(scanner.limiter.limits.MaxFileSizeBytes))
	}
}

func (scanner *Scanner) recordSkip(entry types.Entry, reason types.SkipReason, message string) {
	scanner.skips = append(scanner.skips, types.SkipRecord{
		AbsolutePath: entry.AbsolutePath,
		Reason:       reason,
		Message:      message,
	})
}

// Result snapshots everything the completed traversal produced.
func (scanner *Scanner) Result() *types.ScanResult {
	return &types.ScanResult{
		RootPath:      scanner.rootPath,
		Tree:          scanner.tree,
		Files:         scanner.files,
		Skips:         scanner.skips,
		FilesAdmitted: scanner.limiter.FilesAdmitted(),
		BytesAdmitted: scanner.limiter.BytesAdmitted(),
	}
}
