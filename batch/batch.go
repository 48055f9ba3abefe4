// Package batch records the per-item outcome of a best-effort batch job.
//
// The fetcher and the sprite builder both walk a collection where a single
// bad item must not stop the run. Instead of swallowing the failure, each item
// ends up in a Report as either done or skipped with a reason.
package batch

import (
	"fmt"
	"strings"
)

// Result is the outcome for one item. A nil Err means the item was processed.
type Result struct {
	Item string
	Err  error
}

// Skipped reports whether the item was skipped.
func (r Result) Skipped() bool {
	return r.Err != nil
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: skipped: %v", r.Item, r.Err)
	}
	return r.Item + ": ok"
}

// Report collects results in the order they were produced.
type Report struct {
	Results []Result
}

// Done records a processed item.
func (r *Report) Done(item string) {
	r.Results = append(r.Results, Result{Item: item})
}

// Skip records an item that was skipped because of err.
func (r *Report) Skip(item string, err error) {
	if err == nil {
		err = fmt.Errorf("skipped")
	}
	r.Results = append(r.Results, Result{Item: item, Err: err})
}

// Saved returns the number of processed items.
func (r *Report) Saved() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, res := range r.Results {
		if !res.Skipped() {
			n++
		}
	}
	return n
}

// SkippedResults returns only the skipped results, in order.
func (r *Report) SkippedResults() []Result {
	if r == nil {
		return nil
	}
	var out []Result
	for _, res := range r.Results {
		if res.Skipped() {
			out = append(out, res)
		}
	}
	return out
}

// Summary is a one-line description suitable for a final log message.
func (r *Report) Summary() string {
	skipped := r.SkippedResults()
	s := fmt.Sprintf("%d saved, %d skipped", r.Saved(), len(skipped))
	if len(skipped) == 0 {
		return s
	}
	items := make([]string, 0, len(skipped))
	for _, res := range skipped {
		items = append(items, res.Item)
	}
	return s + " (" + strings.Join(items, ", ") + ")"
}
