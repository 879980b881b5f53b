package note

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/retrobank/internal/format"
)

func fieldMap(fields []Field) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Label] = f.Value
	}
	return out
}

func TestProjectWithoutNoteIsEmpty(t *testing.T) {
	t.Parallel()

	p := Project(nil, ChainState{Size: 99, Root: "0xdeadbeef"}, nil)
	require.True(t, p.Empty)
	require.Equal(t, EmptyMessage, p.Message)
	require.Empty(t, p.Fields)
	require.Empty(t, p.State)
}

func TestProjectFormatsEveryField(t *testing.T) {
	t.Parallel()

	cm, ok := new(big.Int).SetString("abcdef0123456789abcdef01", 16)
	require.True(t, ok)
	nh, ok := new(big.Int).SetString("1234567890abcdef1234567890abcdef", 16)
	require.True(t, ok)
	n := &Note{Value: 100, Secret: 4242, Nullifier: 7, Commitment: cm, NullifierHash: nh}
	st := ChainState{Size: 1234567, Root: "0x1111111111aaaaaaaaaaaaaaaa2222222222"}

	p := Project(n, st, format.NewPrinter("en-US"))
	require.False(t, p.Empty)

	labels := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		labels = append(labels, f.Label)
	}
	require.Equal(t, []string{"VALUE", "SECRET", "NULLIFIER", "COMMITMENT", "NULLIFIER HASH"}, labels)

	fields := fieldMap(p.Fields)
	require.Equal(t, "100", fields["VALUE"])
	require.Equal(t, "4242", fields["SECRET"])
	require.Equal(t, "7", fields["NULLIFIER"])
	require.Equal(t, "0xabcdef01...abcdef01", fields["COMMITMENT"])
	require.Equal(t, "0x12345678...90abcdef", fields["NULLIFIER HASH"])

	state := fieldMap(p.State)
	require.Equal(t, "1,234,567", state["STATE SIZE"])
	require.Equal(t, "0x11111111...2222222222", state["STATE ROOT"])
}

func TestProjectDefaultsRoot(t *testing.T) {
	t.Parallel()

	n := &Note{Commitment: big.NewInt(1), NullifierHash: big.NewInt(2)}
	p := Project(n, ChainState{}, nil)
	state := fieldMap(p.State)
	require.Equal(t, "0", state["STATE SIZE"])
	require.Equal(t, "0x00000000...0000000000", state["STATE ROOT"])
	require.Len(t, DefaultRoot, 66)
}

func TestDecodeFixture(t *testing.T) {
	t.Parallel()

	n, st, err := Decode(`
value = 100
secret = 4242
nullifier = 7
commitment = "0xABCDEF0123456789abcdef01"
nullifier_hash = "255"

[state]
size = 2048
root = "0x99"
`)
	require.NoError(t, err)
	require.Equal(t, int64(100), n.Value)
	require.Equal(t, "abcdef0123456789abcdef01", n.Commitment.Text(16))
	require.Equal(t, int64(255), n.NullifierHash.Int64())
	require.Equal(t, ChainState{Size: 2048, Root: "0x99"}, st)
}

func TestDecodeFixtureKeepsStateDefaults(t *testing.T) {
	t.Parallel()

	_, st, err := Decode(`
commitment = "1"
nullifier_hash = "2"
`)
	require.NoError(t, err)
	require.Equal(t, DefaultChainState(), st)
}

func TestDecodeFixtureErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing commitment": `nullifier_hash = "1"`,
		"bad hex":            "commitment = \"0xzz\"\nnullifier_hash = \"1\"",
		"negative":           "commitment = \"-1\"\nnullifier_hash = \"1\"",
		"negative size":      "commitment = \"1\"\nnullifier_hash = \"1\"\n[state]\nsize = -4",
		"not toml":           "commitment = ",
	}
	for name, data := range cases {
		_, _, err := Decode(data)
		require.Error(t, err, name)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "note.toml")
	require.NoError(t, os.WriteFile(path, []byte("value = 5\ncommitment = \"10\"\nnullifier_hash = \"0x0a\"\n"), 0o600))

	n, _, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, int64(5), n.Value)
	require.Equal(t, 0, n.Commitment.Cmp(n.NullifierHash))

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "missing.toml"))
}

func TestParseBigIntDecimalWithLeadingZero(t *testing.T) {
	t.Parallel()

	v, err := ParseBigInt("0123")
	require.NoError(t, err)
	require.Equal(t, int64(123), v.Int64())
}
