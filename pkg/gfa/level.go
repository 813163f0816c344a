package gfa

import "fmt"

// Level controls how strictly lines and tags are checked.
type Level int

const (
	// LevelNone splits fields without checking their content. Tag values are
	// kept as raw text.
	LevelNone Level = iota
	// LevelDeferred runs structural checks while parsing and leaves value
	// checks to an explicit sweep ([Check], graph.Validate).
	LevelDeferred
	// LevelStrict runs every check while parsing.
	LevelStrict
	// LevelComplete is LevelStrict; kept as the name for "all checks".
	LevelComplete
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelDeferred:
		return "deferred"
	case LevelStrict:
		return "strict"
	case LevelComplete:
		return "complete"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// structural reports whether field shapes are checked at parse time.
func (l Level) structural() bool { return l >= LevelDeferred }

// eager reports whether value checks run at parse time.
func (l Level) eager() bool { return l >= LevelStrict }
