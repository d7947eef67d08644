// Package config resolves run settings and loads ignore rules for the scan.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/codefeedhq/codefeed/internal/utils"
)

const (
	loadIgnoreRulesErrorFormat = "loading ignore rules from %s: %w"
	relativeParentPrefix       = ".." + string(os.PathSeparator)
)

// scopedRules binds one compiled ignore file to the absolute directory that
// declared it. Its patterns apply only to paths below that directory.
type scopedRules struct {
	directoryPath string
	matcher       *gitignore.GitIgnore
}

// RuleSet holds every ignore rule discovered along the walked tree. A path is
// ignored when any declaring directory above it matches the path relative to
// that directory, so nested ignore files keep their per-directory scope.
type RuleSet struct {
	scopes []scopedRules
}

// LoadRuleSet walks rootDirectoryPath and compiles each .ignore and
// .gitignore file it finds. Hidden directories are not descended into; the
// traversal prunes them as well, so rules inside never apply to visited paths.
func LoadRuleSet(rootDirectoryPath string) (*RuleSet, error) {
	ruleSet := &RuleSet{}
	walkFunction := func(currentDirectoryPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}
		if !directoryEntry.IsDir() {
			return nil
		}
		if currentDirectoryPath != rootDirectoryPath && utils.IsHiddenName(directoryEntry.Name()) {
			return filepath.SkipDir
		}
		for _, ignoreFileName := range []string{utils.IgnoreFileName, utils.GitIgnoreFileName} {
			ignoreFilePath := filepath.Join(currentDirectoryPath, ignoreFileName)
			if _, statError := os.Stat(ignoreFilePath); statError != nil {
				if os.IsNotExist(statError) {
					continue
				}
				return fmt.Errorf(loadIgnoreRulesErrorFormat, ignoreFilePath, statError)
			}
			compiledMatcher, compileError := gitignore.CompileIgnoreFile(ignoreFilePath)
			if compileError != nil {
				return fmt.Errorf(loadIgnoreRulesErrorFormat, ignoreFilePath, compileError)
			}
			ruleSet.scopes = append(ruleSet.scopes, scopedRules{
				directoryPath: currentDirectoryPath,
				matcher:       compiledMatcher,
			})
		}
		return nil
	}
	if walkError := filepath.WalkDir(rootDirectoryPath, walkFunction); walkError != nil {
		return nil, walkError
	}
	return ruleSet, nil
}

// Ignored reports whether the absolute path matches any rule whose declaring
// directory contains it. Directory candidates are additionally tested with a
// trailing slash so directory-only patterns ("build/") prune the directory
// itself rather than only its descendants.
func (ruleSet *RuleSet) Ignored(absolutePath string, isDirectory bool) bool {
	if ruleSet == nil {
		return false
	}
	for _, scope := range ruleSet.scopes {
		relativePath, contained := relativeWithin(scope.directoryPath, absolutePath)
		if !contained {
			continue
		}
		if scope.matcher.MatchesPath(relativePath) {
			return true
		}
		if isDirectory && scope.matcher.MatchesPath(relativePath+"/") {
			return true
		}
	}
	return false
}

// relativeWithin resolves candidatePath relative to directoryPath in slash
// form, reporting false when the candidate lies outside the directory.
func relativeWithin(directoryPath string, candidatePath string) (string, bool) {
	relativePath, relativeError := filepath.Rel(directoryPath, candidatePath)
	if relativeError != nil {
		return "", false
	}
	if relativePath == "." || relativePath == ".." || strings.HasPrefix(relativePath, relativeParentPrefix) {
		return "", false
	}
	return filepath.ToSlash(relativePath), true
}
