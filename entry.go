package queuelog

import "time"

// Rendering selects which precomputed form of an entry a sink receives.
type Rendering uint8

const (
	// RenderPlain is the uncolored rendering written to files.
	RenderPlain Rendering = iota
	// RenderColored is the console rendering; the tag carries ANSI colors
	// only when coloring was enabled at the time the entry was queued.
	RenderColored
)

// Entry is one queued log message. Both tag renderings are computed when the
// entry is queued so the writer never makes formatting decisions.
type Entry struct {
	Timestamp string
	Level     Level
	ColorTag  string
	PlainTag  string
	Message   string
}

func newEntry(now time.Time, level Level, message string, colored bool) Entry {
	return Entry{
		Timestamp: "[" + now.Local().Format(timestampLayout) + "]",
		Level:     level,
		ColorTag:  level.coloredTag(colored),
		PlainTag:  level.Tag(),
		Message:   message,
	}
}

// Line returns the full newline-terminated line for the given rendering.
func (e Entry) Line(r Rendering) string {
	tag := e.PlainTag
	if r == RenderColored {
		tag = e.ColorTag
	}
	return e.Timestamp + tag + e.Message + "\n"
}
