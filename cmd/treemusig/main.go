package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mkalita/treemusig/musig"
	"github.com/mkalita/treemusig/session"
)

var (
	green  = color.New(color.FgGreen).PrintfFunc()
	yellow = color.New(color.FgYellow, color.Bold).PrintfFunc()
	red    = color.New(color.FgRed).PrintfFunc()
)

func main() {
	app := &cli.App{
		Name:  "treemusig",
		Usage: "demo of converting an n-of-n musig into a merkleized binary aggregation tree",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "signers",
				Aliases: []string{"n"},
				Usage:   "number of participants (prompted on stdin when omitted)",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Value:   "test tx message",
				Usage:   "message to sign",
			},
			&cli.StringFlag{
				Name:  "curve",
				Value: "secp256k1",
				Usage: "curve backend: secp256k1 or jubjub",
			},
			&cli.StringFlag{
				Name:  "hash",
				Value: "sha256",
				Usage: "hasher: sha256 or blake2b",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "ceremony file (toml); overrides the other flags",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		red("%v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ceremony := &Ceremony{
		Signers: c.Int("signers"),
		Message: c.String("message"),
		Curve:   c.String("curve"),
		Hash:    c.String("hash"),
	}
	if path := c.String("config"); path != "" {
		loaded, err := LoadCeremony(path)
		if err != nil {
			return err
		}
		ceremony = loaded
	}

	if ceremony.Signers == 0 {
		n, err := promptSigners()
		if err != nil {
			return err
		}
		ceremony.Signers = n
	}
	if ceremony.Signers < 1 {
		return fmt.Errorf("need at least one signer, got %d", ceremony.Signers)
	}

	g, err := curveByName(ceremony.Curve)
	if err != nil {
		return err
	}
	h, err := hasherByName(ceremony.Hash)
	if err != nil {
		return err
	}
	params := musig.NewParamsWithHasher(g, h)

	green("Demonstration of converting any n of n musig to binary tree merkelized nested musig\n")

	signers := make([]session.Signer, ceremony.Signers)
	for i := range signers {
		pair, err := params.KeyGen(rand.Reader)
		if err != nil {
			return fmt.Errorf("generating keypair %d: %w", i, err)
		}
		signers[i] = session.Signer{PublicKey: pair.Public, SecretKey: pair.Secret}
	}
	green("Created %d keypairs\n", ceremony.Signers)

	sess, err := session.New(params, signers)
	if err != nil {
		return err
	}
	green("Built aggregation tree: %d leaves, height %d\n",
		sess.Tree().LeafCount(), sess.Tree().Height())

	sig, err := sess.Sign(rand.Reader, []byte(ceremony.Message))
	if err != nil {
		return err
	}

	if err := session.Verify(params, sess.GroupKey(), []byte(ceremony.Message), sig); err != nil {
		red("FAIL\n")
		return cli.Exit("signature did not verify", 1)
	}
	green("SUCCESS\n")
	return nil
}

func promptSigners() (int, error) {
	yellow("Enter n\n")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading signer count: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("parsing signer count: %w", err)
	}
	return n, nil
}
