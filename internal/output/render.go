// Package output renders scan results for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/codefeedhq/codefeed/internal/types"
	"github.com/codefeedhq/codefeed/internal/utils"
)

const (
	separatorWidth       = 50
	fileHeaderFormat     = "File: %s"
	treeIndentUnit       = "    "
	directoryConnector   = "├── "
	fileConnector        = "└── "
	binaryFileAnnotation = " [Non-text file]"

	reportAnalyzingFormat = "Analyzing: %s"
	reportFilesFormat     = "Files analyzed: %d"
	reportTokensFormat    = "Estimated tokens: %d"
	reportElapsedFormat   = "Time elapsed: %s"
)

var separatorLine = strings.Repeat("=", separatorWidth)

// Renderer writes the scan outcome to its two streams: tree, file blocks, and
// the optional report to the content writer, skip messages to the error
// writer.
type Renderer struct {
	contentWriter io.Writer
	errorWriter   io.Writer
}

// NewRenderer constructs a Renderer over the given writers.
func NewRenderer(contentWriter io.Writer, errorWriter io.Writer) *Renderer {
	return &Renderer{
		contentWriter: contentWriter,
		errorWriter:   errorWriter,
	}
}

// WriteScan emits the full scan output in its fixed order: the trimmed tree
// block, one delimited block per admitted file, then every skip message on
// the error stream.
func (renderer *Renderer) WriteScan(result *types.ScanResult) {
	fmt.Fprintln(renderer.contentWriter, RenderTree(result.Tree))
	for _, admittedFile := range result.Files {
		fmt.Fprintln(renderer.contentWriter, separatorLine)
		fmt.Fprintf(renderer.contentWriter, fileHeaderFormat+"\n", admittedFile.RelativePath)
		fmt.Fprintln(renderer.contentWriter, separatorLine)
		fmt.Fprintln(renderer.contentWriter, trimTrailingWhitespace(admittedFile.Content))
	}
	for _, skip := range result.Skips {
		fmt.Fprintln(renderer.errorWriter, skip.Message)
	}
}

// WriteReport emits the four-line summary block.
func (renderer *Renderer) WriteReport(report types.Report) {
	fmt.Fprintf(renderer.contentWriter, reportAnalyzingFormat+"\n", report.RootPath)
	fmt.Fprintf(renderer.contentWriter, reportFilesFormat+"\n", report.FilesAnalyzed)
	fmt.Fprintf(renderer.contentWriter, reportTokensFormat+"\n", report.EstimatedTokens)
	fmt.Fprintf(renderer.contentWriter, reportElapsedFormat+"\n", utils.FormatElapsed(report.Elapsed))
}

// RenderTree assembles the visual tree block with trailing whitespace
// trimmed. The root renders with no indentation; every other line indents
// four spaces per level below the root's children.
func RenderTree(treeLines []types.TreeLine) string {
	var treeBuilder strings.Builder
	for _, treeLine := range treeLines {
		treeBuilder.WriteString(renderTreeLine(treeLine))
		treeBuilder.WriteByte('\n')
	}
	return trimTrailingWhitespace(treeBuilder.String())
}

func renderTreeLine(treeLine types.TreeLine) string {
	if treeLine.Depth == 0 {
		return fileConnector + treeLine.Name
	}
	indent := strings.Repeat(treeIndentUnit, treeLine.Depth-1)
	if treeLine.Kind == types.EntryKindDirectory {
		return indent + directoryConnector + treeLine.Name
	}
	renderedLine := indent + fileConnector + treeLine.Name
	if treeLine.Binary {
		renderedLine += binaryFileAnnotation
	}
	return renderedLine
}

func trimTrailingWhitespace(text string) string {
	return strings.TrimRightFunc(text, unicode.IsSpace)
}
