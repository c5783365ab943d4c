package musig

import (
	"errors"
	"fmt"

	"github.com/mkalita/treemusig/group"
)

// Path is an authentication path: for every tree level from the root
// down to (but excluding) a node, the public keys of the siblings passed
// while descending. It is the proof of a node's exact tree position.
type Path [][]group.Point

// Extend returns a copy of the path with one more level appended. The
// receiver is left untouched so sibling branches can extend the same
// prefix independently.
func (p Path) Extend(siblings ...group.Point) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, siblings)
}

// Signature is a node's round-2 result: the aggregate nonce point R and
// the response scalar Z. For leaves and internal nodes it is a partial
// result; at the tree root it is the completed signature.
type Signature struct {
	R group.Point
	Z group.Scalar
}

// Round2Sign produces a leaf's partial signature. outer is the list of
// ancestor round-1 aggregates accumulated while descending from the
// root (its first entry, when present, is the root's aggregate; all
// leaves of one session receive the same first entry). path is the
// authentication path from the root down to this leaf.
//
// The leaf rebuilds the root aggregate key and its own effective key
// coefficient from the path, so the resulting partial signature is bound
// to this exact tree position: signing with a correct key but a wrong
// path yields an unverifiable signature.
func (p *Params) Round2Sign(st *Round1State, outer []*Round1Out, sk group.Scalar, msg []byte, path Path) (*Signature, error) {
	if st == nil || len(st.nonces) != nonceCount {
		return nil, errors.New("musig: malformed round-1 state")
	}
	if sk == nil || sk.IsZero() {
		return nil, errors.New("musig: missing secret key")
	}

	pk := p.group.NewPoint().ScalarMult(sk, p.group.Generator())
	aggKey, lambda, err := p.unwindPath(pk, path)
	if err != nil {
		return nil, err
	}

	base, err := p.nonceBase(st, outer)
	if err != nil {
		return nil, err
	}

	encKey := aggKey.Bytes()
	hashedMsg := p.hasher.Digest("msg", msg)

	var encNonces []byte
	for _, c := range base.Commitments {
		encNonces = append(encNonces, c.Bytes()...)
	}
	b := p.hasher.Binding(p.group, encKey, base.Transcript, encNonces, hashedMsg)

	// R = R1 + b*R2
	R := p.group.NewPoint().ScalarMult(b, base.Commitments[1])
	R = p.group.NewPoint().Add(base.Commitments[0], R)

	c := p.hasher.Challenge(p.group, encKey, R.Bytes(), hashedMsg)

	// z = r1 + b*r2 + c*lambda*sk
	z := p.group.NewScalar().Mul(b, st.nonces[1])
	z = p.group.NewScalar().Add(st.nonces[0], z)
	keyTerm := p.group.NewScalar().Mul(lambda, sk)
	keyTerm = p.group.NewScalar().Mul(c, keyTerm)
	z = p.group.NewScalar().Add(z, keyTerm)

	return &Signature{R: R, Z: z}, nil
}

// Round2Aggregate combines the round-2 results of sibling subtrees. All
// parts must carry the same nonce point; the responses are summed.
func (p *Params) Round2Aggregate(parts []*Signature) (*Signature, error) {
	if len(parts) == 0 {
		return nil, errors.New("musig: no round-2 results to aggregate")
	}
	for _, part := range parts {
		if part == nil || part.R == nil || part.Z == nil {
			return nil, errors.New("musig: malformed round-2 result")
		}
	}

	R := parts[0].R
	z := p.group.NewScalar().Set(parts[0].Z)
	for _, part := range parts[1:] {
		if !part.R.Equal(R) {
			return nil, errors.New("musig: diverging nonce points in round-2 aggregation")
		}
		z = p.group.NewScalar().Add(z, part.Z)
	}

	return &Signature{R: p.group.NewPoint().Set(R), Z: z}, nil
}

// Verify checks a completed signature against the aggregate public key
// and the signed message.
func (p *Params) Verify(key group.Point, msg []byte, sig *Signature) bool {
	if key == nil || sig == nil || sig.R == nil || sig.Z == nil {
		return false
	}

	hashedMsg := p.hasher.Digest("msg", msg)
	c := p.hasher.Challenge(p.group, key.Bytes(), sig.R.Bytes(), hashedMsg)

	// z*G == R + c*X
	lhs := p.group.NewPoint().ScalarMult(sig.Z, p.group.Generator())
	rhs := p.group.NewPoint().ScalarMult(c, key)
	rhs = p.group.NewPoint().Add(sig.R, rhs)

	return lhs.Equal(rhs)
}

// unwindPath walks the authentication path from the leaf back up to the
// root, rebuilding the aggregate key at every level and accumulating the
// product of this leaf's per-level key coefficients.
func (p *Params) unwindPath(pk group.Point, path Path) (group.Point, group.Scalar, error) {
	agg := p.group.NewPoint().Set(pk)
	lambda := scalarOne(p.group)

	for i := len(path) - 1; i >= 0; i-- {
		siblings := path[i]
		if len(siblings) != 1 || siblings[0] == nil {
			return nil, nil, fmt.Errorf("musig: authentication path level %d needs exactly one sibling", i)
		}
		sibling := siblings[0]

		list := p.keyListDigest(agg.Bytes(), sibling.Bytes())
		coeff := p.hasher.KeyCoeff(p.group, list, agg.Bytes())
		lambda = p.group.NewScalar().Mul(lambda, coeff)

		next, err := p.KeyAgg(agg, sibling)
		if err != nil {
			return nil, nil, err
		}
		agg = next
	}
	return agg, lambda, nil
}

// nonceBase selects the nonce aggregate a leaf signs against: the
// top-level entry of the outer context, or the leaf's own commitments
// when the tree consists of a single leaf and there is no context.
func (p *Params) nonceBase(st *Round1State, outer []*Round1Out) (*Round1Out, error) {
	if len(outer) > 0 {
		base := outer[0]
		if base == nil || len(base.Commitments) != nonceCount {
			return nil, errors.New("musig: malformed outer context")
		}
		return base, nil
	}

	commitments := make([]group.Point, nonceCount)
	for j, nonce := range st.nonces {
		commitments[j] = p.group.NewPoint().ScalarMult(nonce, p.group.Generator())
	}
	return &Round1Out{
		Commitments: commitments,
		Transcript:  p.nonceTranscript(commitments),
	}, nil
}
