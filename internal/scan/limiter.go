package scan

import "github.com/codefeedhq/codefeed/internal/types"

// Limits carries the three admission ceilings, fixed for the whole run.
type Limits struct {
	MaxFileCount      int
	MaxTotalSizeBytes int64
	MaxFileSizeBytes  int64
}

// Limiter is the stateful admission gate for candidate files. Its running
// totals only ever grow, and only through Commit; a rejected or failed
// candidate leaves them untouched. Single-consumer, no locking.
type Limiter struct {
	limits        Limits
	filesAdmitted int
	bytesAdmitted int64
}

// NewLimiter constructs a Limiter with zeroed running totals.
func NewLimiter(limits Limits) *Limiter {
	return &Limiter{limits: limits}
}

// Admit checks candidateSizeBytes against the ceilings in a fixed order:
// admitted-file count, then cumulative size, then per-file size. A candidate
// can violate several ceilings at once; the first violated one names the skip
// reason, so the order is part of the observable contract. Admission never
// mutates the totals; the caller commits separately after the content read
// succeeds.
func (limiter *Limiter) Admit(candidateSizeBytes int64) (bool, types.SkipReason) {
	if limiter.filesAdmitted >= limiter.limits.MaxFileCount {
		return false, types.SkipReasonFileCountLimit
	}
	if limiter.bytesAdmitted+candidateSizeBytes > limiter.limits.MaxTotalSizeBytes {
		return false, types.SkipReasonTotalSizeLimit
	}
	if candidateSizeBytes > limiter.limits.MaxFileSizeBytes {
		return false, types.SkipReasonFileSizeLimit
	}
	return true, ""
}

// Commit adds one admitted file of the given size to the running totals.
func (limiter *Limiter) Commit(committedSizeBytes int64) {
	limiter.filesAdmitted++
	limiter.bytesAdmitted += committedSizeBytes
}

// FilesAdmitted reports how many files have been committed so far.
func (limiter *Limiter) FilesAdmitted() int {
	return limiter.filesAdmitted
}

// BytesAdmitted reports the cumulative committed size so far.
func (limiter *Limiter) BytesAdmitted() int64 {
	return limiter.bytesAdmitted
}
