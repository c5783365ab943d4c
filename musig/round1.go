package musig

import (
	"errors"
	"fmt"
	"io"

	"github.com/mkalita/treemusig/group"
)

// Round1State holds a signer's secret nonces for one session. Nonces
// must never be reused across sessions.
type Round1State struct {
	nonces []group.Scalar
}

// Round1Out is a node's public round-1 contribution: its (possibly
// aggregated) nonce commitments plus a transcript hash binding the
// subtree that produced them.
type Round1Out struct {
	Commitments []group.Point
	Transcript  []byte
}

// Round1Begin starts round 1 for one signer: it draws fresh nonces and
// returns the secret state together with the public commitment output.
// signers is the number of participants whose outputs will eventually be
// aggregated with this one.
func (p *Params) Round1Begin(r io.Reader, signers int) (*Round1State, *Round1Out, error) {
	if signers < 1 {
		return nil, nil, fmt.Errorf("musig: invalid signer count %d", signers)
	}

	nonces := make([]group.Scalar, nonceCount)
	commitments := make([]group.Point, nonceCount)
	for j := range nonces {
		nonce, err := p.group.RandomScalar(r)
		if err != nil {
			return nil, nil, err
		}
		nonces[j] = nonce
		commitments[j] = p.group.NewPoint().ScalarMult(nonce, p.group.Generator())
	}

	out := &Round1Out{
		Commitments: commitments,
		Transcript:  p.nonceTranscript(commitments),
	}
	return &Round1State{nonces: nonces}, out, nil
}

// Round1Aggregate combines sibling round-1 outputs: nonce commitments
// are summed component-wise and the transcripts are folded together.
func (p *Params) Round1Aggregate(outs []*Round1Out) (*Round1Out, error) {
	if len(outs) == 0 {
		return nil, errors.New("musig: no round-1 outputs to aggregate")
	}

	commitments := make([]group.Point, nonceCount)
	for j := range commitments {
		commitments[j] = p.group.NewPoint()
	}
	transcripts := make([][]byte, 0, len(outs))

	for _, out := range outs {
		if out == nil || len(out.Commitments) != nonceCount {
			return nil, errors.New("musig: malformed round-1 output")
		}
		for j, c := range out.Commitments {
			commitments[j] = p.group.NewPoint().Add(commitments[j], c)
		}
		transcripts = append(transcripts, out.Transcript)
	}

	return &Round1Out{
		Commitments: commitments,
		Transcript:  p.hasher.Digest("agg", transcripts...),
	}, nil
}

// Round1Extend binds an aggregated round-1 output to a tree position by
// folding the position's aggregate key into the transcript. The nonce
// commitments themselves are unchanged.
func (p *Params) Round1Extend(out *Round1Out, key group.Point) (*Round1Out, error) {
	if out == nil || len(out.Commitments) != nonceCount {
		return nil, errors.New("musig: malformed round-1 output")
	}
	if key == nil {
		return nil, errors.New("musig: cannot extend with nil key")
	}

	commitments := make([]group.Point, nonceCount)
	for j, c := range out.Commitments {
		commitments[j] = p.group.NewPoint().Set(c)
	}
	return &Round1Out{
		Commitments: commitments,
		Transcript:  p.hasher.Digest("ext", out.Transcript, key.Bytes()),
	}, nil
}

// nonceTranscript commits to a fresh set of nonce commitments.
func (p *Params) nonceTranscript(commitments []group.Point) []byte {
	encoded := make([][]byte, len(commitments))
	for j, c := range commitments {
		encoded[j] = c.Bytes()
	}
	return p.hasher.Digest("nonce", encoded...)
}
