package musig

import (
	"bytes"
	"errors"
	"io"

	"github.com/mkalita/treemusig/group"
)

// nonceCount is the number of nonces each signer commits to in round 1
// (the two-nonce construction).
const nonceCount = 2

// Params bundles the group and hash choices shared by every operation of
// one signing ceremony.
type Params struct {
	group  group.Group
	hasher Hasher
}

// NewParams creates signing parameters over the given group with the
// default SHA-256 hasher.
func NewParams(g group.Group) *Params {
	return &Params{group: g, hasher: &SHA256Hasher{}}
}

// NewParamsWithHasher creates signing parameters with a custom hash
// function, e.g. [NewBlake2bHasher] for Blake2b domain separation.
func NewParamsWithHasher(g group.Group, h Hasher) *Params {
	return &Params{group: g, hasher: h}
}

// Group returns the underlying group.
func (p *Params) Group() group.Group {
	return p.group
}

// KeyPair is one participant's signing key pair.
type KeyPair struct {
	Secret group.Scalar
	Public group.Point
}

// KeyGen generates a fresh key pair from the given random source.
func (p *Params) KeyGen(r io.Reader) (*KeyPair, error) {
	sk, err := p.group.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	if sk.IsZero() {
		return nil, errors.New("musig: generated zero secret key")
	}
	pk := p.group.NewPoint().ScalarMult(sk, p.group.Generator())
	return &KeyPair{Secret: sk, Public: pk}, nil
}

// KeyAgg combines two public keys into their pairwise aggregate:
//
//	X = H(L, a)*a + H(L, b)*b
//
// where L commits to the unordered pair {a, b}. The combine is
// deterministic and order-independent, so a signer holding only the
// sibling values along its authentication path can rebuild every
// ancestor key without knowing which side it descended from.
func (p *Params) KeyAgg(a, b group.Point) (group.Point, error) {
	if a == nil || b == nil {
		return nil, errors.New("musig: cannot aggregate nil key")
	}
	encA, encB := a.Bytes(), b.Bytes()
	list := p.keyListDigest(encA, encB)

	ca := p.hasher.KeyCoeff(p.group, list, encA)
	cb := p.hasher.KeyCoeff(p.group, list, encB)

	left := p.group.NewPoint().ScalarMult(ca, a)
	right := p.group.NewPoint().ScalarMult(cb, b)
	return p.group.NewPoint().Add(left, right), nil
}

// keyListDigest commits to an unordered key pair by hashing the sorted
// encodings.
func (p *Params) keyListDigest(a, b []byte) []byte {
	lo, hi := a, b
	if bytes.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	return p.hasher.Digest("keyagg", lo, hi)
}

// scalarOne returns the scalar 1.
func scalarOne(g group.Group) group.Scalar {
	buf := make([]byte, 32)
	buf[31] = 1
	s, _ := g.NewScalar().SetBytes(buf)
	return s
}
