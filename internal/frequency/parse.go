package frequency

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// numeral matches a non-negative decimal with at most one decimal point:
// "12", "12.3", "12." and ".5" pass; signs and exponents do not.
var numeral = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

const maxLineSize = 1024 * 1024

// Parse reads whitespace-delimited lines and collects the second token of every
// line where that token is a non-negative decimal numeral. Other lines are skipped.
func Parse(r io.Reader) ([]float64, error) {
	frequencies := make([]float64, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || !numeral.MatchString(fields[1]) {
			continue
		}
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse frequency %q: %w", fields[1], err)
		}
		frequencies = append(frequencies, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequencies: %w", err)
	}

	return frequencies, nil
}

// ReadFile parses the frequency file at path
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency file: %w", err)
	}
	defer f.Close()

	frequencies, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return frequencies, nil
}
