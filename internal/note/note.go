// note.go - display model for a privacy note and the chain state it lives in.
//
// Commitments and nullifier hashes arrive pre-computed. Nothing here hashes,
// verifies or mutates a note; Project only turns one into labelled strings.

package note

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/jask/retrobank/internal/format"
)

// EmptyMessage is shown when no note is loaded.
const EmptyMessage = "NO CURRENT NOTE LOADED"

// DefaultRoot is the placeholder state root: 0x followed by 64 zeros.
var DefaultRoot = "0x" + strings.Repeat("0", 64)

// Note is a spendable note as reported by the caller.
type Note struct {
	Value     int64
	Secret    int64
	Nullifier int64
	// hash of (value, secret)
	Commitment *big.Int
	// hash of (commitment, nullifier)
	NullifierHash *big.Int
}

// ChainState is metadata about the commitment set the note belongs to.
type ChainState struct {
	Size int64
	// Root is the commitment tree root. Empty means unset and renders as DefaultRoot.
	Root string
}

// DefaultChainState has no entries and the placeholder root.
func DefaultChainState() ChainState {
	return ChainState{Size: 0, Root: DefaultRoot}
}

// Field is one labelled value in the inspector.
type Field struct {
	Label string
	Value string
	// Hashed marks values that are truncated digests rather than plain numbers.
	Hashed bool
}

// Projection is what the inspector renders.
type Projection struct {
	Empty   bool
	Message string
	Fields  []Field
	State   []Field
}

// Project maps a note and its chain state to display fields. A nil note
// yields the empty projection. An empty root falls back to DefaultRoot.
func Project(n *Note, st ChainState, p *message.Printer) Projection {
	if n == nil {
		return Projection{Empty: true, Message: EmptyMessage}
	}
	root := st.Root
	if root == "" {
		root = DefaultRoot
	}
	return Projection{
		Fields: []Field{
			{Label: "VALUE", Value: strconv.FormatInt(n.Value, 10)},
			{Label: "SECRET", Value: strconv.FormatInt(n.Secret, 10)},
			{Label: "NULLIFIER", Value: strconv.FormatInt(n.Nullifier, 10)},
			{Label: "COMMITMENT", Value: format.HexBigInt(n.Commitment), Hashed: true},
			{Label: "NULLIFIER HASH", Value: format.HexBigInt(n.NullifierHash), Hashed: true},
		},
		State: []Field{
			{Label: "STATE SIZE", Value: format.Grouped(p, st.Size)},
			{Label: "STATE ROOT", Value: format.StateRoot(root), Hashed: true},
		},
	}
}
