package wallet

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/ton/wallet"
	"golang.org/x/crypto/pbkdf2"

	"github.com/dymensionxyz/tonshard/types"
)

const (
	seedSalt       = "TON default seed"
	seedIterations = 100000
)

// Generator derives a fresh wallet on every call. It implements search.Generator.
type Generator struct {
	cfg     Config
	version wallet.Version
}

// NewGenerator creates a Generator from a validated config.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:     cfg,
		version: versions[strings.ToLower(cfg.Version)],
	}, nil
}

// Generate draws a new mnemonic and derives its wallet address.
func (g *Generator) Generate(ctx context.Context) (types.Candidate, error) {
	words, err := NewMnemonic(g.cfg.MnemonicWords)
	if err != nil {
		return types.Candidate{}, err
	}
	return g.FromMnemonic(words)
}

// FromMnemonic derives the wallet address of an existing recovery phrase.
func (g *Generator) FromMnemonic(words []string) (types.Candidate, error) {
	key := KeyFromMnemonic(words, g.cfg.Password)
	addr, err := wallet.AddressFromPubKey(key.Public().(ed25519.PublicKey), g.version, g.cfg.Subwallet)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("derive %s address: %w", g.cfg.Version, err)
	}
	addr.SetTestnetOnly(g.cfg.Testnet)
	addr.SetBounce(g.cfg.Bounceable)

	id, err := accountID(addr)
	if err != nil {
		return types.Candidate{}, err
	}
	return types.Candidate{
		Mnemonic:  words,
		Workchain: addr.Workchain(),
		AccountID: id.Raw(addr.Workchain()),
		Address:   addr.String(),
	}, nil
}

func accountID(addr *address.Address) (types.AccountID, error) {
	var id types.AccountID
	data := addr.Data()
	if len(data) != types.AccountIDLength {
		return id, fmt.Errorf("%w: address hash is %d bytes", types.ErrMalformedIdentifier, len(data))
	}
	copy(id[:], data)
	return id, nil
}

// NewMnemonic returns a BIP39 recovery phrase with the given number of words.
func NewMnemonic(words int) ([]string, error) {
	entropy, err := bip39.NewEntropy(words / 3 * 32)
	if err != nil {
		return nil, fmt.Errorf("new entropy: %w", err)
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("new mnemonic: %w", err)
	}
	return strings.Fields(m), nil
}

// KeyFromMnemonic derives the ed25519 key wallet apps use for a recovery phrase.
func KeyFromMnemonic(words []string, password string) ed25519.PrivateKey {
	mac := hmac.New(sha512.New, []byte(strings.Join(words, " ")))
	mac.Write([]byte(password))
	seed := pbkdf2.Key(mac.Sum(nil), []byte(seedSalt), seedIterations, ed25519.SeedSize, sha512.New)
	return ed25519.NewKeyFromSeed(seed)
}

// ParseAddress accepts either a raw "<workchain>:<hex>" address or a user-friendly one and returns
// the raw form.
func ParseAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if wc, id, err := types.ParseRawAddress(s); err == nil {
		return id.Raw(wc), nil
	}
	addr, err := address.ParseAddr(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", types.ErrMalformedIdentifier, err)
	}
	id, err := accountID(addr)
	if err != nil {
		return "", err
	}
	return id.Raw(addr.Workchain()), nil
}
