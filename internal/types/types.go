// Package types defines every cross-package data structure used by the codefeed CLI.
package types

import "time"

const (
	// EntryKindDirectory marks a traversal entry that is a directory.
	EntryKindDirectory = "directory"
	// EntryKindFile marks a traversal entry that is a regular file.
	EntryKindFile = "file"
)

// SkipReason tags the rule or failure that excluded a file from the output.
type SkipReason string

const (
	// SkipReasonFileCountLimit marks a file rejected because the admitted-file ceiling was reached.
	SkipReasonFileCountLimit SkipReason = "file-count-limit"
	// SkipReasonTotalSizeLimit marks a file rejected because admitting it would overflow the cumulative size ceiling.
	SkipReasonTotalSizeLimit SkipReason = "total-size-limit"
	// SkipReasonFileSizeLimit marks a file rejected because its own size exceeds the per-file ceiling.
	SkipReasonFileSizeLimit SkipReason = "per-file-size-limit"
	// SkipReasonReadError marks a file whose size or content could not be read.
	SkipReasonReadError SkipReason = "read-error"
	// SkipReasonClassificationError marks a file whose text/binary probe failed.
	SkipReasonClassificationError SkipReason = "classification-error"
)

// Entry is one filesystem node yielded by traversal. Entries are produced in
// traversal order, consumed once, and not retained.
type Entry struct {
	AbsolutePath string
	RelativePath string
	Name         string
	Kind         string
	Depth        int
}

// TreeLine is the renderable record of one visited entry. Depth zero is the
// traversal root. Binary is set only for files excluded by classification.
type TreeLine struct {
	Name   string
	Depth  int
	Kind   string
	Binary bool
}

// AdmittedFile pairs a root-relative path with the file content that passed
// every admission check. Slice order equals traversal order.
type AdmittedFile struct {
	RelativePath string
	Content      string
}

// SkipRecord captures one excluded file together with the exact message later
// written to the error stream.
type SkipRecord struct {
	AbsolutePath string
	Reason       SkipReason
	Message      string
}

// ScanResult aggregates everything a completed traversal produced.
type ScanResult struct {
	RootPath      string
	Tree          []TreeLine
	Files         []AdmittedFile
	Skips         []SkipRecord
	FilesAdmitted int
	BytesAdmitted int64
}

// Report summarizes a scan for the optional reporting block.
type Report struct {
	RootPath        string
	FilesAnalyzed   int
	EstimatedTokens int
	Elapsed         time.Duration
}
