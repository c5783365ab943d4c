package musig

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/mkalita/treemusig/group"
)

// Hasher defines the hash operations required by the signing scheme.
// Different implementations can provide different hash functions and
// domain separation schemes.
type Hasher interface {
	// KeyCoeff computes the aggregation coefficient of one key within
	// an aggregated pair. Inputs: key list commitment, encoded key.
	KeyCoeff(g group.Group, list, key []byte) group.Scalar

	// Binding computes the nonce-binding factor.
	// Inputs: aggregate key, round-1 transcript, encoded nonce
	// commitments, hashed message.
	Binding(g group.Group, key, transcript, nonces, msg []byte) group.Scalar

	// Challenge computes the Schnorr challenge.
	// Inputs: aggregate key, final nonce point R, hashed message.
	Challenge(g group.Group, key, nonce, msg []byte) group.Scalar

	// Digest hashes arbitrary protocol data under a domain tag. It is
	// used for message pre-hashing and round-1 transcripts.
	Digest(tag string, data ...[]byte) []byte
}

// reduceToScalar interprets a digest as a big-endian integer and reduces
// it modulo the group order.
func reduceToScalar(g group.Group, digest []byte) group.Scalar {
	order := new(big.Int).SetBytes(g.Order())
	v := new(big.Int).SetBytes(digest)
	v.Mod(v, order)

	buf := make([]byte, 32)
	v.FillBytes(buf)
	s, _ := g.NewScalar().SetBytes(buf)
	return s
}

// SHA256Hasher implements Hasher using SHA-256 with string domain tags.
// This is the default hasher for general use.
type SHA256Hasher struct{}

// Digest implements Hasher.Digest.
func (h *SHA256Hasher) Digest(tag string, data ...[]byte) []byte {
	hasher := sha256.New()
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

func (h *SHA256Hasher) hashToScalar(g group.Group, tag string, data ...[]byte) group.Scalar {
	return reduceToScalar(g, h.Digest(tag, data...))
}

// KeyCoeff implements Hasher.KeyCoeff.
func (h *SHA256Hasher) KeyCoeff(g group.Group, list, key []byte) group.Scalar {
	return h.hashToScalar(g, "keycoeff", list, key)
}

// Binding implements Hasher.Binding.
func (h *SHA256Hasher) Binding(g group.Group, key, transcript, nonces, msg []byte) group.Scalar {
	return h.hashToScalar(g, "bind", key, transcript, nonces, msg)
}

// Challenge implements Hasher.Challenge.
func (h *SHA256Hasher) Challenge(g group.Group, key, nonce, msg []byte) group.Scalar {
	return h.hashToScalar(g, "chal", key, nonce, msg)
}

// Blake2bHasher implements Hasher using Blake2b-512 with a domain
// separation prefix.
//
// Domain separation format: prefix + tag + input. The 64-byte output is
// interpreted as little-endian before reducing mod the group order.
type Blake2bHasher struct {
	// Prefix is the domain separation prefix.
	Prefix string
}

// NewBlake2bHasher creates a Blake2bHasher with the default prefix.
func NewBlake2bHasher() *Blake2bHasher {
	return &Blake2bHasher{
		Prefix: "TREEMUSIG-BLAKE512-v1",
	}
}

// Digest implements Hasher.Digest.
func (h *Blake2bHasher) Digest(tag string, data ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// hashToScalar hashes data and converts to a scalar. The output is
// byte-reversed for little-endian interpretation before reducing.
func (h *Blake2bHasher) hashToScalar(g group.Group, tag string, data ...[]byte) group.Scalar {
	hash := h.Digest(tag, data...)

	reversed := make([]byte, len(hash))
	for i := 0; i < len(hash); i++ {
		reversed[i] = hash[len(hash)-1-i]
	}
	return reduceToScalar(g, reversed)
}

// KeyCoeff implements Hasher.KeyCoeff.
func (h *Blake2bHasher) KeyCoeff(g group.Group, list, key []byte) group.Scalar {
	return h.hashToScalar(g, "keycoeff", list, key)
}

// Binding implements Hasher.Binding.
func (h *Blake2bHasher) Binding(g group.Group, key, transcript, nonces, msg []byte) group.Scalar {
	return h.hashToScalar(g, "bind", key, transcript, nonces, msg)
}

// Challenge implements Hasher.Challenge.
func (h *Blake2bHasher) Challenge(g group.Group, key, nonce, msg []byte) group.Scalar {
	return h.hashToScalar(g, "chal", key, nonce, msg)
}
