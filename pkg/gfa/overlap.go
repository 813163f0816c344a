package gfa

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/gfakit/pkg/errors"
)

// Overlap is the overlap descriptor of a link, containment or path junction:
// a CIGAR string or "*" when unspecified. The engine only needs its
// alignment length; the text is otherwise carried through unchanged.
type Overlap string

// NoOverlap is the "*" placeholder.
const NoOverlap Overlap = "*"

var cigarRe = regexp.MustCompile(`^([0-9]+[MIDNSHPX=])+$`)

// ParseOverlap checks s at structural levels and returns it as an Overlap.
func ParseOverlap(s string, level Level) (Overlap, error) {
	o := Overlap(s)
	if level.structural() {
		if err := o.Validate(); err != nil {
			return "", err
		}
	}
	return o, nil
}

// NewMatchOverlap returns an "nM" overlap, or NoOverlap for n <= 0.
func NewMatchOverlap(n int) Overlap {
	if n <= 0 {
		return NoOverlap
	}
	return Overlap(strconv.Itoa(n) + "M")
}

// Validate reports a FORMAT_ERROR unless o is "*" or a CIGAR string.
func (o Overlap) Validate() error {
	if o.IsPlaceholder() || cigarRe.MatchString(string(o)) {
		return nil
	}
	return errors.New(errors.ErrCodeFormat, "invalid overlap %q", string(o))
}

// IsPlaceholder reports whether the overlap is unspecified.
func (o Overlap) IsPlaceholder() bool { return o == NoOverlap || o == "" }

func (o Overlap) String() string {
	if o == "" {
		return string(NoOverlap)
	}
	return string(o)
}

type cigarOp struct {
	n  int
	op byte
}

func (o Overlap) ops() []cigarOp {
	if o.IsPlaceholder() {
		return nil
	}
	var ops []cigarOp
	n := 0
	for i := 0; i < len(o); i++ {
		c := o[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			continue
		}
		ops = append(ops, cigarOp{n: n, op: c})
		n = 0
	}
	return ops
}

// Length returns the number of bases of the second sequence covered by the
// overlap (operations M, =, X and I). Placeholders have length 0.
func (o Overlap) Length() int {
	total := 0
	for _, op := range o.ops() {
		switch op.op {
		case 'M', '=', 'X', 'I':
			total += op.n
		}
	}
	return total
}

// Complement returns the overlap as seen from the other strand: operations
// in reverse order with insertions and deletions swapped.
func (o Overlap) Complement() Overlap {
	ops := o.ops()
	if ops == nil {
		return o
	}
	slices.Reverse(ops)
	var b strings.Builder
	for _, op := range ops {
		c := op.op
		switch c {
		case 'I':
			c = 'D'
		case 'D':
			c = 'I'
		}
		b.WriteString(strconv.Itoa(op.n))
		b.WriteByte(c)
	}
	return Overlap(b.String())
}
