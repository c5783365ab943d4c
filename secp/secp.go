package secp

import (
	"errors"
	"io"
	"math/big"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mkalita/treemusig/group"
)

// curveOrder is the secp256k1 group order n.
var curveOrder *big.Int

func init() {
	curveOrder = new(big.Int).Set(secp256k1.S256().N)
}

// identityEncoding is the encoding of the point at infinity. SEC1
// compressed form cannot represent it, so a single zero byte is used.
var identityEncoding = []byte{0x00}

// Scalar represents an element of the secp256k1 scalar field. It
// implements [group.Scalar] by wrapping decred's ModNScalar, which keeps
// all arithmetic reduced modulo the group order.
type Scalar struct {
	inner secp256k1.ModNScalar
}

// Add sets s to a + b (mod n) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Set(&aScalar.inner)
	s.inner.Add(&bScalar.inner)
	return s
}

// Sub sets s to a - b (mod n) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	neg := bScalar.inner
	neg.Negate()
	s.inner.Set(&aScalar.inner)
	s.inner.Add(&neg)
	return s
}

// Mul sets s to a * b (mod n) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Set(&aScalar.inner)
	s.inner.Mul(&bScalar.inner)
	return s
}

// Negate sets s to -a (mod n) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	s.inner.Negate()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	bytes := s.inner.Bytes()
	return bytes[:]
}

// SetBytes sets s from a big-endian byte slice of at most 32 bytes and
// returns s. The value is reduced modulo the group order.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) > 32 {
		return nil, errors.New("secp: scalar encoding exceeds 32 bytes")
	}
	s.inner.SetByteSlice(data)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equals(&bScalar.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point represents a point on the secp256k1 curve. It implements
// [group.Point] by wrapping decred's JacobianPoint; the zero value is the
// point at infinity.
type Point struct {
	inner secp256k1.JacobianPoint
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	secp256k1.AddNonConst(&aPoint.inner, &bPoint.inner, &p.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	var negB Point
	negB.Negate(b)
	secp256k1.AddNonConst(&aPoint.inner, &negB.inner, &p.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	p.inner.Y.Normalize()
	p.inner.Y.Negate(1)
	p.inner.Y.Normalize()
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	secp256k1.ScalarMultNonConst(&scalar.inner, &qPoint.inner, &p.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the 33-byte SEC1 compressed encoding, or a single zero
// byte for the point at infinity.
func (p *Point) Bytes() []byte {
	if p.IsIdentity() {
		return append([]byte(nil), identityEncoding...)
	}
	var affine secp256k1.JacobianPoint
	affine.Set(&p.inner)
	affine.ToAffine()
	return secp256k1.NewPublicKey(&affine.X, &affine.Y).SerializeCompressed()
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) == 1 && data[0] == 0x00 {
		p.inner = secp256k1.JacobianPoint{}
		return p, nil
	}
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, err
	}
	pub.AsJacobian(&p.inner)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	if p.IsIdentity() || bPoint.IsIdentity() {
		return p.IsIdentity() && bPoint.IsIdentity()
	}
	var pa, ba secp256k1.JacobianPoint
	pa.Set(&p.inner)
	ba.Set(&bPoint.inner)
	pa.ToAffine()
	ba.ToAffine()
	return pa.X.Equals(&ba.X) && pa.Y.Equals(&ba.Y)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	z := p.inner.Z
	return z.Normalize().IsZero()
}

// Secp256k1 implements [group.Group] for the secp256k1 curve.
//
// Secp256k1 is a zero-sized type that provides access to curve
// operations. Create an instance with &Secp256k1{} or new(Secp256k1).
type Secp256k1 struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *Secp256k1) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the point at infinity.
func (g *Secp256k1) NewPoint() group.Point {
	return &Point{}
}

// Generator returns the standard secp256k1 base point.
func (g *Secp256k1) Generator() group.Point {
	var p Point
	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one, &p.inner)
	return &p
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. The result is reduced into [0, n).
func (g *Secp256k1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := &Scalar{}
	s.inner.SetBytes(&buf)
	return s, nil
}

// Order returns the secp256k1 group order as a big-endian byte slice.
func (g *Secp256k1) Order() []byte {
	return curveOrder.Bytes()
}
