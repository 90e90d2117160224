package predictions

import (
	"context"
	"fmt"
)

// OutputIterator streams the elements of a prediction's output as the
// server appends them. It is single-pass and not restartable.
//
// The usage follows the bufio.Scanner idiom:
//
//	it := prediction.OutputIterator(ctx)
//	for it.Next() {
//	    handle(it.Current())
//	}
//	if err := it.Err(); err != nil {
//	    // *ModelError if the prediction failed after the streamed
//	    // output was delivered, or a reload/context error.
//	}
//
// Elements are yielded in server order, without duplicates, buffering
// at most one poll cycle. Output already present when the iterator is
// created counts as consumed; the iterator delivers growth observed
// after that point, plus the final tail once the prediction succeeds.
// If the prediction fails, Err returns a *ModelError carrying the
// server's error text — only after every already-fetched element has
// been yielded; streamed output is never rolled back.
type OutputIterator struct {
	pred    *Prediction
	seen    int
	pending []any
	current any
	err     error
	done    bool

	sleep  func() error
	reload func() error
}

// OutputIterator returns an iterator over the prediction's output,
// polling at the client's interval. The prediction's output must be an
// append-only list; any other output shape yields no elements.
//
// The iterator reloads p in place, so p reflects the latest snapshot
// while iterating. ctx bounds the whole iteration.
func (p *Prediction) OutputIterator(ctx context.Context) *OutputIterator {
	it := &OutputIterator{pred: p}
	it.seen = len(outputList(p.Output))
	it.sleep = func() error {
		if p.client == nil {
			return fmt.Errorf("modelrun: prediction %q is not attached to a client", p.ID)
		}
		return sleep(ctx, p.client.pollInterval)
	}
	it.reload = func() error { return p.Reload(ctx) }
	return it
}

// Next advances to the next output element, blocking through poll
// cycles until one is available or the prediction terminates. It
// returns false when the stream is exhausted or an error occurred;
// consult Err afterwards.
func (it *OutputIterator) Next() bool {
	if it.err != nil {
		return false
	}

	for {
		if len(it.pending) > 0 {
			it.current = it.pending[0]
			it.pending = it.pending[1:]
			return true
		}

		if it.done {
			return false
		}

		if it.pred.Status.Terminated() {
			it.done = true
			if it.pred.Status == StatusFailed {
				it.err = &ModelError{Message: it.pred.Error}
				return false
			}
			// Final tail that arrived with the terminal snapshot.
			it.pending = it.unseen()
			continue
		}

		if err := it.sleep(); err != nil {
			it.err = err
			it.done = true
			return false
		}
		if err := it.reload(); err != nil {
			it.err = err
			it.done = true
			return false
		}
		if !it.pred.Status.Terminated() {
			it.pending = it.unseen()
		}
	}
}

// Current returns the element produced by the last successful Next.
func (it *OutputIterator) Current() any {
	return it.current
}

// Err returns the error that stopped iteration, if any. A failed
// prediction surfaces as *ModelError once the stream is otherwise
// exhausted.
func (it *OutputIterator) Err() error {
	return it.err
}

// unseen returns the output elements beyond the consumed length and
// advances the mark.
func (it *OutputIterator) unseen() []any {
	out := outputList(it.pred.Output)
	if len(out) <= it.seen {
		return nil
	}
	tail := out[it.seen:]
	it.seen = len(out)
	return tail
}

// outputList interprets an output value as an appended list.
func outputList(output any) []any {
	list, ok := output.([]any)
	if !ok {
		return nil
	}
	return list
}
