package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l *Logger) {
	l.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local) }
}

func TestLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "editor.txt")
	l := New(path)
	fixedClock(l)

	l.Log("hello")
	l.Logf("added %s #%d", "cube", 2)

	want := []string{"[2024-03-09 14:05:07] hello", "[2024-03-09 14:05:07] added cube #2"}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestMemoryOnly(t *testing.T) {
	l := New("")
	l.Log("a")
	assert.Len(t, l.Lines(), 1)
}

func TestHistoryBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Log(fmt.Sprint(i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] 10"))
	assert.True(t, strings.HasSuffix(lines[maxLines-1], fmt.Sprintf("] %d", maxLines+9)))
}

func TestTail(t *testing.T) {
	l := New("")
	assert.Nil(t, l.Tail(3))
	for _, s := range []string{"a", "b", "c"} {
		l.Log(s)
	}
	tail := l.Tail(2)
	require.Len(t, tail, 2)
	assert.True(t, strings.HasSuffix(tail[0], "] b"))
	assert.Len(t, l.Tail(10), 3)
}
