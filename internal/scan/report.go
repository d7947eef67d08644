package scan

import (
	"errors"
	"strings"
	"time"

	"github.com/codefeedhq/codefeed/internal/tokenizer"
	"github.com/codefeedhq/codefeed/internal/types"
)

// BuildReport estimates the token cost of the admitted content and bundles it
// with the run statistics. The contents are concatenated with no separator
// before counting, so adjacent files can fuse at the boundary into a single
// token sequence; the estimate accepts that imprecision.
func BuildReport(result *types.ScanResult, counter tokenizer.Counter, elapsed time.Duration) (types.Report, error) {
	if counter == nil {
		return types.Report{}, errors.New("nil tokenizer counter")
	}
	var aggregateContent strings.Builder
	for _, admittedFile := range result.Files {
		aggregateContent.WriteString(admittedFile.Content)
	}
	estimatedTokens, countError := counter.CountString(aggregateContent.String())
	if countError != nil {
		return types.Report{}, countError
	}
	return types.Report{
		RootPath:        result.RootPath,
		FilesAnalyzed:   result.FilesAdmitted,
		EstimatedTokens: estimatedTokens,
		Elapsed:         elapsed,
	}, nil
}
