package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// AccountIDLength is the size of an account id in bytes.
const AccountIDLength = 32

// AccountID is the 256-bit account identifier, the hash part of a raw address.
type AccountID [AccountIDLength]byte

// ParseAccountID decodes a raw address "<workchain>:<64 hex chars>". The workchain part is optional and
// does not take part in shard assignment, so it is dropped.
func ParseAccountID(s string) (AccountID, error) {
	_, id, err := ParseRawAddress(s)
	return id, err
}

// ParseRawAddress decodes a raw address into its workchain and account id. A missing workchain is
// the basechain, 0.
func ParseRawAddress(s string) (int32, AccountID, error) {
	var id AccountID

	var workchain int64
	hexPart := strings.TrimSpace(s)
	if i := strings.IndexByte(hexPart, ':'); i >= 0 {
		wc, err := strconv.ParseInt(hexPart[:i], 10, 32)
		if err != nil {
			return 0, id, fmt.Errorf("%w: workchain %q", ErrMalformedIdentifier, hexPart[:i])
		}
		workchain = wc
		hexPart = hexPart[i+1:]
	}

	b, err := hex.DecodeString(hexPart)
	if err != nil {
		return 0, id, fmt.Errorf("%w: %w", ErrMalformedIdentifier, err)
	}
	if len(b) != AccountIDLength {
		return 0, id, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedIdentifier, len(b), AccountIDLength)
	}
	copy(id[:], b)
	return int32(workchain), id, nil //nolint:gosec // parsed with bitSize 32
}

// Top64 returns the leading 64 bits, the only part of the id shards are split on.
func (id AccountID) Top64() uint64 {
	return binary.BigEndian.Uint64(id[:8])
}

func (id AccountID) String() string {
	return hex.EncodeToString(id[:])
}

// Raw renders the id as a raw address in the given workchain.
func (id AccountID) Raw(workchain int32) string {
	return fmt.Sprintf("%d:%s", workchain, id)
}
