package queuelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_TagsAndColors(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
		color string
		name  string
	}{
		{DebugLevel, "[DEBUG] ", "\033[34m", "debug"},
		{InfoLevel, "[INFO ] ", "\033[32m", "info"},
		{WarnLevel, "[WARN ] ", "\033[33m", "warn"},
		{ErrorLevel, "[ERROR] ", "\033[31m", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.level.Tag())
			assert.Len(t, tt.level.Tag(), 8)
			assert.Equal(t, tt.color, tt.level.Color())
			assert.Equal(t, tt.name, tt.level.String())
			assert.Equal(t, tt.tag, tt.level.coloredTag(false))
			assert.Equal(t, tt.color+tt.tag+ansiReset, tt.level.coloredTag(true))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{" warn ", WarnLevel, false},
		{"Warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"err", ErrorLevel, false},
		{"trace", InfoLevel, true},
		{"fatal", InfoLevel, true},
		{"", InfoLevel, true},
		{"loud", InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntry_Line(t *testing.T) {
	now := time.Date(2023, 12, 31, 23, 59, 58, 0, time.Local)

	e := newEntry(now, ErrorLevel, "boom", true)
	assert.Equal(t, "[2023-12-31 23:59:58]", e.Timestamp)
	assert.Equal(t, "[2023-12-31 23:59:58][ERROR] boom\n", e.Line(RenderPlain))
	assert.Equal(t, "[2023-12-31 23:59:58]\033[31m[ERROR] \033[0mboom\n", e.Line(RenderColored))

	plain := newEntry(now, InfoLevel, "ok", false)
	assert.Equal(t, plain.Line(RenderPlain), plain.Line(RenderColored))
}

func TestEntryQueue_FIFOAndReuse(t *testing.T) {
	q := &entryQueue{}
	for _, msg := range []string{"a", "b", "c"} {
		q.push(Entry{Message: msg})
	}
	assert.Equal(t, 3, q.len())

	batch := q.takeAll()
	require.Len(t, batch, 3)
	assert.Equal(t, "a", batch[0].Message)
	assert.Equal(t, "c", batch[2].Message)
	assert.Equal(t, 0, q.len())

	q.push(Entry{Message: "d"})
	q.recycle(batch)
	assert.Empty(t, batch[0].Message)

	next := q.takeAll()
	require.Len(t, next, 1)
	assert.Equal(t, "d", next[0].Message)

	q.push(Entry{Message: "e"})
	assert.Equal(t, 1, q.len())
	assert.Equal(t, "e", q.takeAll()[0].Message)
}
