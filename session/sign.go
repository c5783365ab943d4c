package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/mkalita/treemusig/group"
	"github.com/mkalita/treemusig/musig"
	"github.com/mkalita/treemusig/tree"
)

// RunRound1 computes every node's round-1 output, children before
// parents. Leaves draw nonce commitments; internal nodes aggregate their
// children's outputs and extend the aggregate with their own tree
// position. Any primitive failure aborts the round with no partial
// recovery.
func (s *Session) RunRound1(rng io.Reader) error {
	if err := s.round1(rng, s.tree); err != nil {
		return err
	}
	s.round1Done = true
	return nil
}

func (s *Session) round1(rng io.Reader, n *tree.Node[group.Point]) error {
	if n.IsLeaf() {
		st, err := s.state(n.Value())
		if err != nil {
			return err
		}
		nonces, out, err := s.params.Round1Begin(rng, s.signers)
		if err != nil {
			return fmt.Errorf("session: round 1 begin: %w", err)
		}
		st.nonces = nonces
		st.out = out
		return nil
	}

	if err := s.round1(rng, n.Left()); err != nil {
		return err
	}
	leftState, err := s.state(n.Left().Value())
	if err != nil {
		return err
	}
	if leftState.out == nil {
		return fmt.Errorf("%w: left child has no round-1 output", ErrStateMissing)
	}

	inner := leftState.out
	if right := n.Right(); right != nil {
		if err := s.round1(rng, right); err != nil {
			return err
		}
		rightState, err := s.state(right.Value())
		if err != nil {
			return err
		}
		if rightState.out == nil {
			return fmt.Errorf("%w: right child has no round-1 output", ErrStateMissing)
		}
		inner, err = s.params.Round1Aggregate([]*musig.Round1Out{inner, rightState.out})
		if err != nil {
			return fmt.Errorf("session: round 1 aggregate: %w", err)
		}
	}

	out, err := s.params.Round1Extend(inner, n.Value())
	if err != nil {
		return fmt.Errorf("session: round 1 extend: %w", err)
	}
	s.states[keyOf(n.Value())] = &nodeState{out: out, outInner: inner}
	return nil
}

// RunRound2 computes every node's round-2 result for msg. Context flows
// down — each internal node appends its round-1 aggregate to the outer
// context and extends each child's authentication path with the sibling's
// key — and results aggregate up, terminating with the root's completed
// signature. Round 1 must have completed over the entire tree first.
func (s *Session) RunRound2(msg []byte) error {
	if !s.round1Done {
		return ErrRound1Incomplete
	}
	return s.round2(s.tree, msg, nil, nil)
}

func (s *Session) round2(n *tree.Node[group.Point], msg []byte, outer []*musig.Round1Out, path musig.Path) error {
	st, err := s.state(n.Value())
	if err != nil {
		return err
	}

	if n.IsLeaf() {
		if st.nonces == nil {
			return fmt.Errorf("%w: leaf has no round-1 state", ErrStateMissing)
		}
		if st.secret == nil {
			return fmt.Errorf("%w: %x", ErrSecretMissing, n.Value().Bytes())
		}
		partial, err := s.params.Round2Sign(st.nonces, outer, st.secret, msg, path)
		if err != nil {
			return fmt.Errorf("session: round 2 sign: %w", err)
		}
		st.partial = partial
		return nil
	}

	if st.outInner == nil {
		return fmt.Errorf("%w: internal node has no round-1 aggregate", ErrStateMissing)
	}
	right := n.Right()
	if right == nil {
		return ErrOrphanInternal
	}
	left := n.Left()

	extended := make([]*musig.Round1Out, len(outer), len(outer)+1)
	copy(extended, outer)
	extended = append(extended, st.outInner)

	// Each child's path gains the other child's key at this level.
	if err := s.round2(left, msg, extended, path.Extend(right.Value())); err != nil {
		return err
	}
	if err := s.round2(right, msg, extended, path.Extend(left.Value())); err != nil {
		return err
	}

	leftState, err := s.state(left.Value())
	if err != nil {
		return err
	}
	rightState, err := s.state(right.Value())
	if err != nil {
		return err
	}
	if leftState.partial == nil || rightState.partial == nil {
		return fmt.Errorf("%w: child has no round-2 result", ErrStateMissing)
	}

	partial, err := s.params.Round2Aggregate([]*musig.Signature{leftState.partial, rightState.partial})
	if err != nil {
		return fmt.Errorf("session: round 2 aggregate: %w", err)
	}
	st.partial = partial
	return nil
}

// Signature returns the completed signature: the root node's round-2
// result. It fails if round 2 has not run to completion.
func (s *Session) Signature() (*musig.Signature, error) {
	st, err := s.state(s.tree.Value())
	if err != nil {
		return nil, err
	}
	if st.partial == nil {
		return nil, errors.New("session: round 2 has not completed")
	}
	return st.partial, nil
}

// Sign runs both rounds back to back and returns the root signature.
// It is the single-process path the demo driver uses; distributed
// callers drive RunRound1 and RunRound2 themselves.
func (s *Session) Sign(rng io.Reader, msg []byte) (*musig.Signature, error) {
	if err := s.RunRound1(rng); err != nil {
		return nil, err
	}
	if err := s.RunRound2(msg); err != nil {
		return nil, err
	}
	return s.Signature()
}

// Verify checks whether a completed signature is valid for the given
// message and aggregate key. Returns nil if the signature is valid.
func Verify(params *musig.Params, key group.Point, msg []byte, sig *musig.Signature) error {
	if !params.Verify(key, msg, sig) {
		return errors.New("session: signature verification failed")
	}
	return nil
}
