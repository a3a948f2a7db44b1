/*
Package iteration checks that iterators honor the sequence protocol.

Checkers take a factory that returns a fresh iterator over the same logical
sequence on every call. One iterator is driven to exhaustion to obtain a
snapshot of the sequence, which is used as ground truth for the rest of the
check. Further iterators are then driven the way the contract under test
requires and compared with the snapshot.

Three contracts are checked:

  - Check: size hints are correct at every step, and asking an exhausted
    iterator for more values is safe. It may resume producing values.
  - FusedCheck: an exhausted iterator stays exhausted.
  - BidirectionalCheck: taking values from both ends, in any interleaving,
    yields the snapshot and never more values than it holds.

The fused and bidirectional checks require the base check to pass first.
*/
package iteration

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reltest.iteration'
func tracer() tracing.Trace {
	return tracing.Select("reltest.iteration")
}
