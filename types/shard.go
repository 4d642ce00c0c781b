package types

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// ShardFull is the shard covering the whole 64-bit prefix space. The network reports it for the
// masterchain, accounts are never assigned to it.
const ShardFull ShardID = 1 << 63

// MaxPrefixLen is the deepest split a shard id can express.
const MaxPrefixLen = 63

// ShardID is a shard descriptor in its packed form: the lowest set bit is a marker, every bit above
// it is the fixed prefix and every bit below it is zero.
type ShardID uint64

// Prefix is the unpacked view of a ShardID.
type Prefix struct {
	// Bits holds the fixed prefix, left aligned. Bits below the prefix are zero.
	Bits uint64
	// Len is the number of fixed leading bits.
	Len uint8
}

// ShardFromPrefix packs a prefix back into a ShardID. Bits beyond prefixLen are ignored.
func ShardFromPrefix(prefixBits uint64, prefixLen uint8) (ShardID, error) {
	if prefixLen > MaxPrefixLen {
		return 0, errorsmod.Wrapf(ErrInvalidShard, "prefix length %d exceeds %d", prefixLen, MaxPrefixLen)
	}
	marker := uint64(1) << (MaxPrefixLen - prefixLen)
	return ShardID(prefixBits&^(marker<<1-1) | marker), nil
}

// ParseShardID parses a shard id as printed by explorers and this tool: hex with an optional 0x
// prefix, in any case. Negative decimal values, which is how nodes render the id as int64, are
// accepted as well.
func ParseShardID(s string) (ShardID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errorsmod.Wrapf(ErrInvalidShard, "parse %q: %s", s, err)
		}
		return checkShard(ShardID(uint64(v))) //nolint:gosec // two's complement is the wire form
	}
	hexPart := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(hexPart, 16, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidShard, "parse %q: %s", s, err)
	}
	return checkShard(ShardID(v))
}

func checkShard(s ShardID) (ShardID, error) {
	if !s.Valid() {
		return 0, errorsmod.Wrap(ErrInvalidShard, "zero shard id")
	}
	return s, nil
}

// Valid reports whether the shard id has a marker bit.
func (s ShardID) Valid() bool {
	return s != 0
}

// Prefix returns the explicit prefix view. It must only be called on a valid shard id.
func (s ShardID) Prefix() Prefix {
	tz := bits.TrailingZeros64(uint64(s))
	return Prefix{
		Bits: uint64(s) & s.mask(),
		Len:  uint8(MaxPrefixLen - tz), //nolint:gosec // tz <= 63 for valid ids
	}
}

// mask has every bit above the marker set.
func (s ShardID) mask() uint64 {
	// a shift of 64 yields zero, so ShardFull has an empty mask and matches everything
	return ^uint64(0) << (bits.TrailingZeros64(uint64(s)) + 1)
}

// Contains reports whether an account whose top 64 bits are top64 belongs to the shard.
func (s ShardID) Contains(top64 uint64) bool {
	if !s.Valid() {
		return false
	}
	return (uint64(s)^top64)&s.mask() == 0
}

// Overlaps reports whether two shards share part of the address space.
func (s ShardID) Overlaps(other ShardID) bool {
	if !s.Valid() || !other.Valid() {
		return false
	}
	return s.Contains(uint64(other)) || other.Contains(uint64(s))
}

// ExpectedAttempts is the mean number of uniformly random accounts that have to be drawn before one
// lands in the shard, i.e. 2^64 divided by the shard size.
func (s ShardID) ExpectedAttempts() uint64 {
	return uint64(1) << s.Prefix().Len
}

// String renders the shard id as lowercase hex without a prefix.
func (s ShardID) String() string {
	return strconv.FormatUint(uint64(s), 16)
}

// String renders the fixed bits as a binary string, empty for the whole space.
func (p Prefix) String() string {
	if p.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(p.Len), p.Bits>>(64-uint(p.Len)))
}
