package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mkalita/treemusig/group"
	"github.com/mkalita/treemusig/jubjub"
	"github.com/mkalita/treemusig/musig"
	"github.com/mkalita/treemusig/secp"
)

// Ceremony describes one demo signing run. It can be loaded from a toml
// file:
//
//	signers = 8
//	message = "test tx message"
//	curve = "secp256k1"
//	hash = "sha256"
type Ceremony struct {
	Signers int    `toml:"signers"`
	Message string `toml:"message"`
	Curve   string `toml:"curve"`
	Hash    string `toml:"hash"`
}

// LoadCeremony reads a ceremony description from a toml file. Missing
// fields keep their defaults.
func LoadCeremony(path string) (*Ceremony, error) {
	ceremony := &Ceremony{
		Message: "test tx message",
		Curve:   "secp256k1",
		Hash:    "sha256",
	}
	if _, err := toml.DecodeFile(path, ceremony); err != nil {
		return nil, fmt.Errorf("reading ceremony file: %w", err)
	}
	return ceremony, nil
}

func curveByName(name string) (group.Group, error) {
	switch strings.ToLower(name) {
	case "secp256k1", "secp":
		return &secp.Secp256k1{}, nil
	case "jubjub":
		return &jubjub.Jubjub{}, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

func hasherByName(name string) (musig.Hasher, error) {
	switch strings.ToLower(name) {
	case "sha256":
		return &musig.SHA256Hasher{}, nil
	case "blake2b":
		return musig.NewBlake2bHasher(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}
