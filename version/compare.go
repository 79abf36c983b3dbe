package version

import (
	"fmt"
	"strings"
)

type semver [3]int

func parse(s string) (semver, error) {
	var v semver
	_, err := fmt.Sscanf(strings.TrimPrefix(strings.TrimSpace(s), "v"), "%d.%d.%d", &v[0], &v[1], &v[2])
	if err != nil {
		return v, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}
	return 0, nil
}
