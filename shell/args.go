package shell

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// parseFloats parses exactly n numeric arguments
func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, errors.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Errorf("not a number: %s", a)
		}
		out[i] = v
	}
	return out, nil
}

// createFileCompleter completes local paths
func createFileCompleter() func([]string) []string {
	return func(args []string) []string {
		prefix := ""
		if len(args) > 0 {
			prefix = args[len(args)-1]
		}
		matches, _ := filepath.Glob(prefix + "*")
		for i, m := range matches {
			if fi, err := os.Stat(m); err == nil && fi.IsDir() {
				matches[i] = m + string(filepath.Separator)
			}
		}
		return matches
	}
}
