// Package jubjub provides a Jubjub elliptic curve implementation of the
// [group.Group] interface for use with the nested multi-signature scheme.
//
// Jubjub is a twisted Edwards curve defined over the scalar field of
// BLS12-381. It is commonly used in zero-knowledge proof systems such as
// Zcash Sapling.
//
// This package wraps the Jubjub implementation from gnark-crypto,
// providing a clean interface that satisfies [group.Group],
// [group.Scalar], and [group.Point].
//
// # Curve Parameters
//
// Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// over the BLS12-381 scalar field, with a prime-order subgroup of
// roughly 252 bits.
//
// # Usage
//
// Create a Jubjub group and hand it to the protocol parameters:
//
//	g := &jubjub.Jubjub{}
//	params := musig.NewParams(g)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. All scalar operations are performed modulo the curve's
// subgroup order to ensure correctness.
package jubjub
