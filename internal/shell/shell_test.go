package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amp-labs/amp-pq/date"
	"github.com/amp-labs/amp-pq/pqueue"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	s, err := New(&out, slogt.New(t))
	require.NoError(t, err)

	t.Cleanup(s.Close)

	return s, &out
}

func run(t *testing.T, s *Session, lines ...string) {
	t.Helper()

	for _, line := range lines {
		require.NoError(t, s.Execute(line), line)
	}
}

func TestEarliestDueFirst(t *testing.T) {
	t.Parallel()

	s, out := newSession(t)

	run(t, s,
		"insert send invites 12/05/2026",
		"insert write report 10/05/2026",
		"insert book venue 12/05/2026",
		"list",
	)

	assert.Equal(t, "10/05/2026  write report\n"+
		"12/05/2026  send invites\n"+
		"12/05/2026  book venue\n", out.String())
}

func TestCursorCommands(t *testing.T) {
	t.Parallel()

	s, out := newSession(t)

	run(t, s, "next", "insert a 01/01/2026", "insert b 02/01/2026", "first", "next", "next")

	assert.Equal(t, "(end)\na\nb\n(end)\n", out.String())
}

func TestChange(t *testing.T) {
	t.Parallel()

	s, out := newSession(t)

	run(t, s,
		"insert a 01/01/2026",
		"insert b 05/01/2026",
		"change b 05/01/2026 01/12/2025",
		"list",
	)

	assert.Equal(t, "01/12/2025  b\n01/01/2026  a\n", out.String())

	err := s.Execute("change b 05/01/2026 02/01/2026")
	require.ErrorIs(t, err, pqueue.ErrElementDoesNotExist)
	assert.Equal(t, pqueue.ElementDoesNotExist, pqueue.ResultOf(err))
}

func TestPopAndRemove(t *testing.T) {
	t.Parallel()

	s, out := newSession(t)

	run(t, s,
		"pop",
		"insert a 01/01/2026",
		"insert b 02/01/2026",
		"insert c 03/01/2026",
		"pop",
		"remove c",
		"size",
		"contains b",
		"contains c",
	)

	assert.Equal(t, "1\ntrue\nfalse\n", out.String())
	require.ErrorIs(t, s.Execute("remove c"), pqueue.ErrElementDoesNotExist)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s, out := newSession(t)

	run(t, s, "snapshot")
	assert.Equal(t, "(empty)\n", out.String())

	out.Reset()

	run(t, s, "insert a 01/01/2026", "insert b 02/01/2026", "first", "snapshot", "next")

	assert.Equal(t, "a\n01/01/2026  a\n02/01/2026  b\n(end)\n", out.String(),
		"snapshot resets the cursor of the source queue")
	assert.Equal(t, 2, s.Tasks().Size())
}

func TestClear(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t)

	run(t, s, "insert a 01/01/2026", "insert b 02/01/2026", "clear")

	assert.Equal(t, 0, s.Tasks().Size())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t)

	tests := []struct {
		line string
		want error
	}{
		{line: "bogus", want: ErrUsage},
		{line: "insert 01/01/2026", want: ErrUsage},
		{line: "insert a 31/01/2026", want: date.ErrInvalidDate},
		{line: "insert a tomorrow", want: date.ErrInvalidDate},
		{line: "change a 01/01/2026", want: ErrUsage},
		{line: "change a 01/01/2026 00/01/2026", want: date.ErrInvalidDate},
		{line: "remove", want: ErrUsage},
		{line: "contains", want: ErrUsage},
		{line: "quit", want: ErrQuit},
		{line: "EXIT", want: ErrQuit},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, s.Execute(tt.line), tt.want, tt.line)
	}

	assert.NoError(t, s.Execute("   "))
	assert.Equal(t, 0, s.Tasks().Size())
}

func TestHelp(t *testing.T) {
	t.Parallel()

	s, out := newSession(t)

	run(t, s, "help")

	for _, cmd := range append([]string{"exit"}, Commands...) {
		assert.Contains(t, out.String(), cmd)
	}

	for line := range strings.Lines(out.String()) {
		name, _, _ := strings.Cut(line, " ")
		assert.Contains(t, Commands, name, "help line %q", line)
	}
}
