package gfa

import "regexp"

// Placeholder is the "*" value used for an omitted sequence.
const Placeholder = "*"

var (
	sequenceRe    = regexp.MustCompile(`^(\*|[A-Za-z=.]+)$`)
	segmentNameRe = regexp.MustCompile(`^[!-)+-<>-~][!-~]*$`)
)

var complement = [256]byte{}

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH"}
	for _, p := range pairs {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		complement[a+'a'-'A'], complement[b+'a'-'A'] = b+'a'-'A', a+'a'-'A'
	}
	complement['U'], complement['u'] = 'A', 'a'
}

// ReverseComplement returns the reverse complement of seq using the IUPAC
// nucleotide alphabet. Characters without a complement (N, S, W, ...) are
// kept. The placeholder is returned unchanged.
func ReverseComplement(seq string) string {
	if seq == Placeholder {
		return seq
	}
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = complement[seq[i]]
	}
	return string(out)
}

// ValidName reports whether name is a valid segment or path name: printable,
// no whitespace, not starting with '*' or '='.
func ValidName(name string) bool { return segmentNameRe.MatchString(name) }
