package config

// EventKind distinguishes the two kinds of entries a document traversal
// reports.
type EventKind int

const (
	// EventSection marks a section boundary and carries the new current
	// section number.
	EventSection EventKind = iota
	// EventBlock marks one occurrence of an environment block.
	EventBlock
)

// Event is one entry of the document-ordered event stream. Events arrive
// pre-structured; this package never parses document markup.
type Event struct {
	Kind EventKind

	// Section is the section-number path for EventSection, e.g. [2, 1]
	// for section 2.1.
	Section []int

	// Env, Label and Body describe an EventBlock occurrence.
	Env   string
	Label string
	Body  string
}

// Document is the loaded event stream for a single export run.
type Document struct {
	Events []Event
}
