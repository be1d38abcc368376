package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// hardenedOffset is the BIP-32 hardened child index offset (2^31).
const hardenedOffset = uint32(0x80000000)

// PathSegment is one level of a hierarchical derivation path.
type PathSegment struct {
	Index    uint32
	Hardened bool
}

// ChildIndex returns the raw BIP-32 child index with the hardened bit applied.
func (s PathSegment) ChildIndex() uint32 {
	if s.Hardened {
		return s.Index + hardenedOffset
	}
	return s.Index
}

// DerivationPath is an ordered sequence of path segments below the master key.
type DerivationPath []PathSegment

// ParseDerivationPath parses a BIP-32 style path string such as
// "m/44'/175'/0'/0/0". The leading "m/" is optional. Hardened segments are
// marked with a trailing ', h or H. Segment indices must fit below 2^31.
func ParseDerivationPath(s string) (DerivationPath, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "m/")
	trimmed = strings.TrimPrefix(trimmed, "M/")
	if trimmed == "" || trimmed == "m" || trimmed == "M" {
		return nil, fmt.Errorf("empty derivation path")
	}

	parts := strings.Split(trimmed, "/")
	path := make(DerivationPath, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty path segment in %q", s)
		}

		hardened := false
		switch part[len(part)-1] {
		case '\'', 'h', 'H':
			hardened = true
			part = part[:len(part)-1]
		}
		if part == "" {
			return nil, fmt.Errorf("hardened marker without index in %q", s)
		}

		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", part, err)
		}
		if uint32(idx) >= hardenedOffset {
			return nil, fmt.Errorf("path index %d out of range", idx)
		}

		path = append(path, PathSegment{Index: uint32(idx), Hardened: hardened})
	}
	return path, nil
}

// String renders the path in canonical "m/44'/0'/1" form.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, seg := range p {
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(seg.Index), 10))
		if seg.Hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}
