package domain

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	identifierExact = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	identifierAny   = regexp.MustCompile(`0x[a-fA-F0-9]{40}`)
)

// IsValidIdentifier reports whether s is exactly an IP identifier (0x + 40 hex chars).
// Validation is syntactic only; mixed-case input is not checksum-verified.
func IsValidIdentifier(s string) bool {
	return identifierExact.MatchString(s)
}

// ExtractIdentifier returns the first identifier embedded anywhere in s
func ExtractIdentifier(s string) (string, bool) {
	id := identifierAny.FindString(s)
	return id, id != ""
}

// SameIdentifier compares two identifiers case-insensitively as addresses
func SameIdentifier(a, b string) bool {
	if !IsValidIdentifier(a) || !IsValidIdentifier(b) {
		return strings.EqualFold(a, b)
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}

// ChecksumIdentifier returns the EIP-55 checksummed form of a valid identifier.
// Invalid input is returned unchanged.
func ChecksumIdentifier(id string) string {
	if !IsValidIdentifier(id) {
		return id
	}
	return common.HexToAddress(id).Hex()
}

// ShortIdentifier returns the first n characters of id, or id itself when shorter
func ShortIdentifier(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// ExplorerURL returns the explorer page of an IP asset
func ExplorerURL(explorerBase, ipID string) string {
	return strings.TrimRight(explorerBase, "/") + "/ipa/" + ipID
}
