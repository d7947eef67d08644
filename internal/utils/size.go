package utils

import "fmt"

const (
	kibibyte int64 = 1024
	mebibyte int64 = kibibyte * 1024
)

// FormatSize converts a byte length into the human-readable form used by the
// limit messages: exact bytes below 1 KiB, otherwise two-decimal KB or MB.
func FormatSize(sizeBytes int64) string {
	switch {
	case sizeBytes < kibibyte:
		return fmt.Sprintf("%d bytes", sizeBytes)
	case sizeBytes < mebibyte:
		return fmt.Sprintf("%.2f KB", float64(sizeBytes)/float64(kibibyte))
	default:
		return fmt.Sprintf("%.2f MB", float64(sizeBytes)/float64(mebibyte))
	}
}
