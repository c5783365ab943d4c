package session

import (
	"errors"
	"fmt"

	"github.com/mkalita/treemusig/group"
	"github.com/mkalita/treemusig/musig"
	"github.com/mkalita/treemusig/tree"
)

var (
	// ErrRound1Incomplete is returned when round 2 is started before
	// round 1 has completed over the whole tree.
	ErrRound1Incomplete = errors.New("session: round 1 has not completed")

	// ErrStateMissing indicates a lookup for a node's protocol state
	// found nothing where the traversal order guarantees there should
	// be something. It is a fatal internal-consistency failure.
	ErrStateMissing = errors.New("session: protocol state missing")

	// ErrOrphanInternal indicates round 2 reached an internal node
	// without a right child. The builder never produces such nodes, so
	// hitting one means the tree and the traversal disagree; the
	// session cannot continue.
	ErrOrphanInternal = errors.New("session: internal node without right child in round 2")

	// ErrSecretMissing indicates a leaf had to sign but no secret key
	// was supplied for it.
	ErrSecretMissing = errors.New("session: no secret key for leaf")
)

// Signer is one tree leaf: a participant's public key and, when the
// participant is held locally, its secret key.
type Signer struct {
	PublicKey group.Point
	SecretKey group.Scalar
}

// nodeState is the mutable per-node protocol record. Leaves fill secret,
// nonces and out; internal nodes fill out and outInner during round 1;
// every node fills partial during round 2.
type nodeState struct {
	secret   group.Scalar
	nonces   *musig.Round1State
	out      *musig.Round1Out // contribution used by the parent
	outInner *musig.Round1Out // pre-extension aggregate, round-2 context
	partial  *musig.Signature
}

// Session runs one two-round signing ceremony over an aggregation tree.
// It owns all per-node protocol state for that ceremony; state is
// written and read in strict traversal order and never shared across
// sessions. A session signs at most one message — create a fresh one
// per signature.
type Session struct {
	params     *musig.Params
	tree       *tree.Node[group.Point]
	states     map[string]*nodeState
	signers    int
	round1Done bool
}

// New builds the aggregation tree over the signers' public keys, in
// order, using the parameters' key aggregation as the combine function,
// and seeds the state store with one entry per leaf.
func New(params *musig.Params, signers []Signer) (*Session, error) {
	if params == nil {
		return nil, errors.New("session: nil params")
	}
	if len(signers) == 0 {
		return nil, tree.ErrNoLeaves
	}

	states := make(map[string]*nodeState, 2*len(signers))
	keys := make([]group.Point, len(signers))
	for i, signer := range signers {
		if signer.PublicKey == nil {
			return nil, fmt.Errorf("session: signer %d has no public key", i)
		}
		k := keyOf(signer.PublicKey)
		if _, ok := states[k]; ok {
			return nil, fmt.Errorf("session: duplicate public key at signer %d", i)
		}
		states[k] = &nodeState{secret: signer.SecretKey}
		keys[i] = signer.PublicKey
	}

	root, err := tree.Build(keys, params.KeyAgg)
	if err != nil {
		return nil, err
	}

	return &Session{
		params:  params,
		tree:    root,
		states:  states,
		signers: len(signers),
	}, nil
}

// Tree returns the session's aggregation tree.
func (s *Session) Tree() *tree.Node[group.Point] {
	return s.tree
}

// GroupKey returns the aggregate public key of all signers: the tree's
// root value. Signatures verify against this key.
func (s *Session) GroupKey() group.Point {
	return s.tree.Value()
}

// state looks up the protocol record for a node value. A miss is a
// structural failure: every node the traversals visit must have been
// seeded or written by an earlier step.
func (s *Session) state(v group.Point) (*nodeState, error) {
	st, ok := s.states[keyOf(v)]
	if !ok {
		return nil, fmt.Errorf("%w: no entry for key %x", ErrStateMissing, v.Bytes())
	}
	return st, nil
}

func keyOf(p group.Point) string {
	return string(p.Bytes())
}
