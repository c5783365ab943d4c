// Package musig implements the pairwise primitives of a nested,
// two-round Schnorr multi-signature scheme (MuSig2-style) over an
// arbitrary elliptic curve group.
//
// The scheme signs with n cosigners whose keys are arranged in a binary
// aggregation tree (see the tree and session packages). This package
// only knows about one node at a time; the tree structure reaches it
// through three narrow inputs:
//
//   - the pairwise key aggregate [Params.KeyAgg], used as the tree's
//     combine function,
//   - the outer context, a list of ancestor round-1 aggregates handed
//     down while descending in round 2,
//   - the authentication [Path], the per-level sibling keys from the
//     root down to a leaf.
//
// # Protocol
//
// Round 1 produces nonce commitments. Each leaf draws two nonces
// ([Params.Round1Begin]); sibling outputs are summed
// ([Params.Round1Aggregate]) and each internal node binds the running
// aggregate to its position by folding its aggregate key into the
// transcript ([Params.Round1Extend]).
//
// Round 2 produces partial signatures. A leaf ([Params.Round2Sign])
// rebuilds the root key X and its effective coefficient λ from its
// authentication path, derives the binding factor b and challenge c from
// the top-level round-1 aggregate, and responds with
//
//	z = r1 + b*r2 + c*λ*sk
//
// Partial results are summed upward ([Params.Round2Aggregate]); the
// root's result is the signature (R, z), verified by
//
//	z*G == R + c*X
//
// via [Params.Verify].
//
// # Hashing
//
// All hashing goes through the [Hasher] interface with per-use domain
// tags. [SHA256Hasher] is the default; [Blake2bHasher] provides
// Blake2b-512 with a domain prefix.
//
// # Security Considerations
//
// Round-1 nonces must never be reused; a [Round1State] is good for
// exactly one message. The authentication path is integrity-critical:
// a signer given a wrong path produces a partial signature that cannot
// aggregate into a valid signature, which is the intended failure mode.
package musig
