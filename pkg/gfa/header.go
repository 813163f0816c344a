package gfa

// Header carries file-level tags such as VN (version).
type Header struct {
	Tags
}

// NewHeader returns a header line with the given tags.
func NewHeader(tags ...Tag) *Header { return &Header{Tags: tags} }

func (h *Header) Kind() Kind { return KindHeader }

func (h *Header) String() string { return joinFields(KindHeader, nil, h.Tags) }

// Merge copies every tag of other into h; tags already present are
// overwritten.
func (h *Header) Merge(other *Header) {
	for _, t := range other.Tags {
		h.SetTag(t)
	}
}

func (h *Header) check() error { return nil }

func parseHeader(fields []string, level Level) (*Header, error) {
	tags, err := parseTags(fields, level)
	if err != nil {
		return nil, err
	}
	return &Header{Tags: tags}, nil
}

// Comment is a free-text line starting with '#'. Text excludes the '#'.
type Comment struct {
	Text string
}

func (c *Comment) Kind() Kind { return KindComment }

func (c *Comment) String() string { return "#" + c.Text }

func (c *Comment) check() error { return nil }
