// Package session orchestrates one n-of-n tree-structured signing
// ceremony. It wraps the low-level primitives in the [musig] package
// with the bookkeeping the protocol is actually hard about: building the
// aggregation tree, running the two rounds in dependency order, and
// threading per-node state, outer context and authentication paths
// through the traversals.
//
// # Lifecycle
//
// A session is created per message, runs both rounds, yields a
// signature, and is discarded:
//
//	params := musig.NewParams(&secp.Secp256k1{})
//	sess, err := session.New(params, signers)
//	if err != nil {
//		return err
//	}
//	sig, err := sess.Sign(rand.Reader, message)
//	if err != nil {
//		return err
//	}
//	if err := session.Verify(params, sess.GroupKey(), message, sig); err != nil {
//		return err
//	}
//
// RunRound1 and RunRound2 are exposed separately for callers that need
// to inspect state between rounds. Round 2 at any node depends on
// round-1 outputs from all other subtrees, so round 1 must complete over
// the whole tree before round 2 starts anywhere; RunRound2 enforces
// this.
//
// # State model
//
// All mutable protocol state lives in a store keyed by node public key,
// one record per tree node. Each record's round-1 fields are written
// exactly once (by the node's own visit) and read only by its parent and
// by the node itself in round 2; round-2 fields are written exactly once
// and read only by the parent. The traversals are single-threaded,
// depth-first recursion.
//
// # Errors
//
// No error is locally recoverable. Primitive failures abort the session
// wrapped with context; [ErrStateMissing], [ErrOrphanInternal] and
// [ErrRound1Incomplete] signal ordering or structural bugs and are never
// silently defaulted.
package session
