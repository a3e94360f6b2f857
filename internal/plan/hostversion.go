package plan

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"builder-generator/internal/diagnostic"
)

// DefaultMinGoVersion is the lowest module go version the generated code
// and the reflist runtime compile with.
const DefaultMinGoVersion = "1.23"

// CheckHostVersion fails with KindIncompatibleHostVersion when goVersion is
// below minVersion. An empty goVersion (no module information) passes.
func CheckHostVersion(goVersion, minVersion string) error {
	if goVersion == "" {
		return nil
	}

	have, err := toSemver(goVersion)
	if err != nil {
		return err
	}

	want, err := toSemver(minVersion)
	if err != nil {
		return err
	}

	if semver.Compare(have, want) < 0 {
		return &ResolutionError{
			Kind: diagnostic.KindIncompatibleHostVersion,
			Args: []string{goVersion, minVersion},
		}
	}

	return nil
}

// toSemver converts a Go version ("1.22", "go1.21.3", "1.23rc1") to semver.
func toSemver(v string) (string, error) {
	v = strings.TrimPrefix(v, "go")

	num, pre := v, ""
	if i := strings.IndexFunc(v, func(r rune) bool { return (r < '0' || r > '9') && r != '.' }); i >= 0 {
		num, pre = v[:i], v[i:]
	}

	out := "v" + num
	if pre != "" {
		if strings.Count(num, ".") == 1 {
			out += ".0"
		}

		out += "-" + pre
	}

	if !semver.IsValid(out) {
		return "", fmt.Errorf("invalid go version %q", v)
	}

	return out, nil
}

// ValidGoVersion reports whether v parses as a Go version.
func ValidGoVersion(v string) bool {
	_, err := toSemver(v)
	return err == nil
}
