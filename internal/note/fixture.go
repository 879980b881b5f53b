package note

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/BurntSushi/toml"
)

// fixture mirrors the TOML note file:
//
//	value = 100
//	secret = 4242
//	nullifier = 7
//	commitment = "0x1c4f..."
//	nullifier_hash = "12345678901234567890"
//
//	[state]
//	size = 1024
//	root = "0xabc..."
type fixture struct {
	Value         int64  `toml:"value"`
	Secret        int64  `toml:"secret"`
	Nullifier     int64  `toml:"nullifier"`
	Commitment    string `toml:"commitment"`
	NullifierHash string `toml:"nullifier_hash"`
	State         *struct {
		Size *int64  `toml:"size"`
		Root *string `toml:"root"`
	} `toml:"state"`
}

// LoadFile reads a note fixture. State keys that are absent keep their defaults.
func LoadFile(path string) (*Note, ChainState, error) {
	var f fixture
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, ChainState{}, fmt.Errorf("decode note %s: %w", path, err)
	}
	return f.note()
}

// Decode is LoadFile for in-memory TOML.
func Decode(data string) (*Note, ChainState, error) {
	var f fixture
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, ChainState{}, fmt.Errorf("decode note: %w", err)
	}
	return f.note()
}

func (f fixture) note() (*Note, ChainState, error) {
	cm, err := ParseBigInt(f.Commitment)
	if err != nil {
		return nil, ChainState{}, fmt.Errorf("commitment: %w", err)
	}
	nh, err := ParseBigInt(f.NullifierHash)
	if err != nil {
		return nil, ChainState{}, fmt.Errorf("nullifier_hash: %w", err)
	}
	st := DefaultChainState()
	if f.State != nil {
		if f.State.Size != nil {
			st.Size = *f.State.Size
		}
		if f.State.Root != nil {
			st.Root = *f.State.Root
		}
	}
	if st.Size < 0 {
		return nil, ChainState{}, fmt.Errorf("state size %d is negative", st.Size)
	}
	return &Note{
		Value:         f.Value,
		Secret:        f.Secret,
		Nullifier:     f.Nullifier,
		Commitment:    cm,
		NullifierHash: nh,
	}, st, nil
}

var errEmptyInt = errors.New("empty value")

// ParseBigInt accepts a base-10 string or a 0x-prefixed base-16 string.
// Negative values are rejected.
func ParseBigInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInt
	}
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative integer %q", s)
	}
	return v, nil
}
