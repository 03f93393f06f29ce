// Package domain provides the shared types for collected JavaScript dependencies.
package domain

import (
	"fmt"

	"github.com/mrz1836/tows/internal/constants"
)

// Kind classifies a dependency by the manifest section that declared it.
// The numeric value is the ordering priority: Runtime > Development > Peer.
type Kind int

// Kind constants define the supported dependency sections.
const (
	// KindPeer is a dependency declared under peerDependencies.
	KindPeer Kind = iota + 1

	// KindDevelopment is a dependency declared under devDependencies.
	KindDevelopment

	// KindRuntime is a dependency declared under dependencies.
	KindRuntime
)

// Kinds returns every kind in the order their sections are read from a manifest.
func Kinds() []Kind {
	return []Kind{KindRuntime, KindDevelopment, KindPeer}
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindRuntime:
		return "runtime"
	case KindDevelopment:
		return "development"
	case KindPeer:
		return "peer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Glyph returns the single-letter marker shown next to a dependency.
func (k Kind) Glyph() string {
	switch k {
	case KindRuntime:
		return "S"
	case KindDevelopment:
		return "D"
	case KindPeer:
		return "P"
	default:
		return "?"
	}
}

// Priority returns the ordering rank of the kind. Higher ranks sort later
// in the ascending sort and therefore earlier on screen.
func (k Kind) Priority() int {
	return int(k)
}

// Section returns the manifest key holding dependencies of this kind.
func (k Kind) Section() string {
	switch k {
	case KindRuntime:
		return constants.SectionRuntime
	case KindDevelopment:
		return constants.SectionDevelopment
	case KindPeer:
		return constants.SectionPeer
	default:
		return ""
	}
}

// IsValid checks if the kind is a recognized section.
func (k Kind) IsValid() bool {
	switch k {
	case KindRuntime, KindDevelopment, KindPeer:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("unknown dependency kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the names
// produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, kind := range Kinds() {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown dependency kind %q", text)
}
