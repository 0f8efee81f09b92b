package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Interactive startup prompts for values not supplied as arguments or
// flags, so `treescope view` with no arguments still works.

var stdin = bufio.NewReader(os.Stdin)

// promptString asks for a line of input and returns it trimmed.
func promptString(label string) (string, error) {
	fmt.Print(label + ": ")
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptBool asks a yes/no question; empty input keeps the default.
func promptBool(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line, err := promptString(fmt.Sprintf("%s (%s)", label, hint))
	if err != nil || line == "" {
		return def
	}
	switch strings.ToLower(line) {
	case "y", "yes", "1":
		return true
	default:
		return false
	}
}

// promptFloat asks for a number; empty or invalid input keeps the default.
func promptFloat(label string, def float64) float64 {
	line, err := promptString(fmt.Sprintf("%s (default %g)", label, def))
	if err != nil || line == "" {
		return def
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return def
	}
	return v
}
