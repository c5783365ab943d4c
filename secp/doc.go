// Package secp provides a secp256k1 implementation of the [group.Group]
// interface for use with the nested multi-signature scheme.
//
// secp256k1 is the short Weierstrass curve used by Bitcoin and many other
// systems. This package wraps the pure-Go implementation from
// decred/dcrd/dcrec/secp256k1, providing a clean interface that satisfies
// [group.Group], [group.Scalar], and [group.Point].
//
// # Encoding
//
// Points encode as the 33-byte SEC1 compressed form. The point at
// infinity has no SEC1 representation, so it encodes as a single zero
// byte; the two forms cannot collide because SEC1 encodings always start
// with 0x02 or 0x03.
//
// # Usage
//
// Create a group instance and hand it to the protocol parameters:
//
//	g := &secp.Secp256k1{}
//	params := musig.NewParams(g)
//
// # Security
//
// This implementation relies on decred's secp256k1 library for the
// underlying curve arithmetic. All scalar operations are performed
// modulo the group order to ensure correctness.
package secp
