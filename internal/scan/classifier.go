package scan

import (
	"io"
	"os"
)

// classificationSampleLength bounds how many leading bytes the text probe examines.
const classificationSampleLength = 1024

// IsTextFile reports whether the leading bytes of the file look like text.
// The probe reads at most the first 1024 bytes and rejects any byte below
// 0x20 other than tab, line feed, and carriage return. High-bit bytes pass,
// so multi-byte encodings count as text, and an empty file is text. Errors
// from opening or the initial read are returned to the caller; they are
// per-file conditions, not run failures.
func IsTextFile(filePath string) (bool, error) {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return false, openError
	}
	defer func() {
		_ = fileHandle.Close()
	}()

	sampleBuffer := make([]byte, classificationSampleLength)
	sampledByteCount, readError := io.ReadFull(fileHandle, sampleBuffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return false, readError
	}
	return isTextSample(sampleBuffer[:sampledByteCount]), nil
}

// isTextSample applies the control-character heuristic to sampled bytes.
func isTextSample(sampledBytes []byte) bool {
	for _, sampledByte := range sampledBytes {
		if sampledByte < 0x20 && sampledByte != '\t' && sampledByte != '\n' && sampledByte != '\r' {
			return false
		}
	}
	return true
}
