package sweep

import (
	"strconv"
	"strings"

	"github.com/lmeierlab/pepsweep/internal/pairs"
	"github.com/lmeierlab/pepsweep/internal/sanitize"
)

// DisableRCFlag turns off reverse-complement checking in the analysis tool
// for every benchmark run.
const DisableRCFlag = "--no_reverse_complement"

// Invocation is one fully-specified external tool call.
type Invocation struct {
	Tool    string
	Args    []string
	Dir     string // working directory for the child process
	Threads int    // requested concurrency, for the oversubscription advisory
}

// NewInvocation builds the tool call for one (pair, threads) sweep point.
// The --output token is the sanitized base name; a base name that sanitizes
// to nothing falls back to "run" so the tool never receives an empty token.
func NewInvocation(tool string, p pairs.Pair, threads int, dir string) Invocation {
	token := sanitize.Name(p.BaseName)
	if token == "" {
		token = "run"
	}
	return Invocation{
		Tool: tool,
		Args: []string{
			"--nucleotide_file", p.NucleotidePath,
			"--peptide_file", p.PeptidePath,
			"--output", token,
			"--num_threads", strconv.Itoa(threads),
			DisableRCFlag,
		},
		Dir:     dir,
		Threads: threads,
	}
}

// String renders the invocation as a shell-escaped command line, suitable
// for the results log and for copy-paste reproduction.
func (inv Invocation) String() string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, shellQuote(inv.Tool))
	for _, a := range inv.Args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// shellQuote quotes s for POSIX sh. Safe strings pass through unchanged;
// anything else is single-quoted with embedded single quotes escaped.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if isShellSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.' || r == '/' || r == '=' || r == ':' || r == ',':
		default:
			return false
		}
	}
	return true
}
