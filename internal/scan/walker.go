package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codefeedhq/codefeed/internal/config"
	"github.com/codefeedhq/codefeed/internal/types"
	"github.com/codefeedhq/codefeed/internal/utils"
)

const (
	rootRelativePath           = "."
	readDirectoryErrorFormat   = "reading directory %s: %w"
	stripRootPrefixErrorFormat = "path %s escapes the traversal root: %w"
)

// EntryHandler consumes one traversal entry. A non-nil error stops the walk
// and propagates to the caller.
type EntryHandler func(entry types.Entry) error

// Walk yields the traversal root followed by its visible descendants,
// depth-first with each directory listing consumed in sorted order, parents
// before children. Hidden entries, ignore-rule matches, and entries that are
// neither directories nor regular files are pruned and produce no entry; a
// symbolic link to a regular file counts as a file, while linked directories
// are not descended into. Entry depth counts path segments below the root;
// the root itself is depth zero.
func Walk(rootDirectoryPath string, ruleSet *config.RuleSet, handleEntry EntryHandler) error {
	rootEntry := types.Entry{
		AbsolutePath: rootDirectoryPath,
		RelativePath: rootRelativePath,
		Name:         filepath.Base(rootDirectoryPath),
		Kind:         types.EntryKindDirectory,
		Depth:        0,
	}
	if handleError := handleEntry(rootEntry); handleError != nil {
		return handleError
	}
	return walkDirectory(rootDirectoryPath, rootDirectoryPath, 1, ruleSet, handleEntry)
}

func walkDirectory(rootDirectoryPath string, currentDirectoryPath string, currentDepth int, ruleSet *config.RuleSet, handleEntry EntryHandler) error {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return fmt.Errorf(readDirectoryErrorFormat, currentDirectoryPath, readDirectoryError)
	}
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if utils.IsHiddenName(entryName) {
			continue
		}
		isDirectory := directoryEntry.IsDir()
		entryAbsolutePath := filepath.Join(currentDirectoryPath, entryName)
		if !isDirectory && !isRegularFileTarget(directoryEntry, entryAbsolutePath) {
			continue
		}
		if ruleSet.Ignored(entryAbsolutePath, isDirectory) {
			continue
		}
		relativePath, relativeError := filepath.Rel(rootDirectoryPath, entryAbsolutePath)
		if relativeError != nil {
			return fmt.Errorf(stripRootPrefixErrorFormat, entryAbsolutePath, relativeError)
		}
		entryKind := types.EntryKindFile
		if isDirectory {
			entryKind = types.EntryKindDirectory
		}
		walkEntry := types.Entry{
			AbsolutePath: entryAbsolutePath,
			RelativePath: filepath.ToSlash(relativePath),
			Name:         entryName,
			Kind:         entryKind,
			Depth:        currentDepth,
		}
		if handleError := handleEntry(walkEntry); handleError != nil {
			return handleError
		}
		if isDirectory {
			if walkError := walkDirectory(rootDirectoryPath, entryAbsolutePath, currentDepth+1, ruleSet, handleEntry); walkError != nil {
				return walkError
			}
		}
	}
	return nil
}

// isRegularFileTarget reports whether a non-directory entry denotes a regular
// file, following a symbolic link to its target. Links to directories are not
// traversed; broken links and other special files produce no entry.
func isRegularFileTarget(directoryEntry os.DirEntry, entryAbsolutePath string) bool {
	entryType := directoryEntry.Type()
	if entryType.IsRegular() {
		return true
	}
	if entryType&os.ModeSymlink == 0 {
		return false
	}
	targetInformation, statError := os.Stat(entryAbsolutePath)
	return statError == nil && targetInformation.Mode().IsRegular()
}
