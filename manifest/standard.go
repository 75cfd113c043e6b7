package manifest

import (
	"fmt"
	"strings"
)

// Standard is a C++ language standard in its compiler flag spelling.
type Standard string

const (
	CXX98   Standard = "c++98"
	CXX03   Standard = "c++03"
	GNUXX98 Standard = "gnu++98"
	GNUXX03 Standard = "gnu++03"
	CXX11   Standard = "c++11"
	GNUXX11 Standard = "gnu++11"
	CXX14   Standard = "c++14"
	GNUXX14 Standard = "gnu++14"
	CXX17   Standard = "c++17"
	GNUXX17 Standard = "gnu++17"
	CXX20   Standard = "c++20"
	GNUXX20 Standard = "gnu++20"
	CXX2B   Standard = "c++2b"
	GNUXX2B Standard = "gnu++2b"
	CXX1Z   Standard = CXX17
	GNUXX1Z Standard = GNUXX17
)

// DefaultStandard is used when a package does not set one.
const DefaultStandard = GNUXX17

var (
	standards = map[string]Standard{}
	// Swift case names spell the flag prefix out: c++20 -> cxx20,
	// gnu++20 -> gnucxx20.
	caseName = strings.NewReplacer("gnu++", "gnucxx", "c++", "cxx")
)

func init() {
	aliases := map[string]Standard{"c++1z": CXX1Z, "gnu++1z": GNUXX1Z}
	for _, s := range Standards() {
		aliases[string(s)] = s
	}
	for flag, s := range aliases {
		standards[flag] = s
		standards[caseName.Replace(flag)] = s
	}
}

// ParseStandard accepts the flag spelling ("c++20") and the Swift case name
// with or without a leading dot (".cxx20"), in any case.
func ParseStandard(s string) (Standard, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if std, ok := standards[key]; ok {
		return std, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedStandard)
}

// Standards lists the canonical supported standards, oldest first.
func Standards() []Standard {
	return []Standard{
		CXX98, CXX03, GNUXX98, GNUXX03, CXX11, GNUXX11, CXX14, GNUXX14,
		CXX17, GNUXX17, CXX20, GNUXX20, CXX2B, GNUXX2B,
	}
}
