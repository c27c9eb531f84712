// Package arch holds the closed set of Debian architectures a Contents index is published for
package arch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Arch is a canonical (lowercase) architecture identifier
type Arch string

// Supported architectures
const (
	AMD64    Arch = "amd64"
	ARM64    Arch = "arm64"
	ARMEL    Arch = "armel"
	ARMHF    Arch = "armhf"
	I386     Arch = "i386"
	MIPS64EL Arch = "mips64el"
	MIPSEL   Arch = "mipsel"
	PPC64EL  Arch = "ppc64el"
	S390X    Arch = "s390x"
	Source   Arch = "source"
	Indep    Arch = "all" // architecture-independent packages
)

// ErrUnknown is returned for identifiers outside the supported set
var ErrUnknown = errors.New("unknown architecture")

// the set is an array so nothing outside this package can grow or reorder it
var supported = [...]Arch{AMD64, ARM64, ARMEL, ARMHF, I386, MIPS64EL, MIPSEL, PPC64EL, S390X, Source, Indep}

var byName = func() map[string]Arch {
	m := make(map[string]Arch, len(supported))
	for _, a := range supported {
		m[string(a)] = a
	}
	return m
}()

// All returns a copy of the supported set in display order
func All() []Arch {
	out := make([]Arch, len(supported))
	copy(out, supported[:])
	return out
}

// Names returns the supported identifiers as strings, in display order
func Names() []string {
	out := make([]string, len(supported))
	for i, a := range supported {
		out[i] = string(a)
	}
	return out
}

// Parse matches s case-insensitively against the supported set
func Parse(s string) (Arch, error) {
	// a Caser is stateful, build one per call
	key := cases.Fold().String(strings.TrimSpace(s))
	if a, ok := byName[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknown, s, strings.Join(Names(), ", "))
}

// Valid reports whether s names a supported architecture
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (a Arch) String() string { return string(a) }
