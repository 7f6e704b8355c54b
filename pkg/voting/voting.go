// Package voting implements a secret-shared vote tallying workflow on top of
// the nmc sum-of-products primitive.
//
// A batch supports a fixed number of votes and choices, agreed upon by all
// tally nodes during Preprocess. Each voter obtains masks from every node for
// its Request, builds a Vote marking the selected choice, and broadcasts it
// to all nodes. Once the full batch has been received, every node computes a
// Share of the outcome, and Reveal combines the shares of all nodes into the
// final per-choice tally.
//
// No single node ever sees a cleartext ballot, and no proper subset of
// shares carries information about the tally.
//
// The phases are strictly ordered: preprocess, mask requests, vote casting,
// outcome computation, reveal. There are no backward transitions; a failed
// preprocessing run must be restarted from scratch with fresh nodes.
package voting

import "errors"

// ErrNotInitialized is returned when a node is asked for masks or an outcome
// before it has been preprocessed.
var ErrNotInitialized = errors.New("voting: node is not initialized")
