package corelog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"
)

var pid = os.Getpid()

// Formatter renders one log line.
type Formatter interface {
	Format(level LogLevel, depth int, msg string)
}

// StringFormatter writes the bare message, one line per call.
type StringFormatter struct {
	w *bufio.Writer
}

// NewStringFormatter wraps w for buffered line writes.
func NewStringFormatter(w io.Writer) *StringFormatter {
	return &StringFormatter{w: bufio.NewWriter(w)}
}

func (s *StringFormatter) Format(_ LogLevel, _ int, msg string) {
	s.w.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		s.w.WriteString("\n")
	}
	s.w.Flush()
}

// GlogFormatter prepends a glog-style header (level, date, time, pid,
// file:line) before the message.
type GlogFormatter struct {
	StringFormatter
}

// NewGlogFormatter wraps w with glog-style headers.
func NewGlogFormatter(w io.Writer) *GlogFormatter {
	g := &GlogFormatter{}
	g.w = bufio.NewWriter(w)
	return g
}

func (g *GlogFormatter) Format(level LogLevel, depth int, msg string) {
	g.w.Write(glogHeader(level, depth+1))
	g.StringFormatter.Format(level, depth+1, msg)
}

func glogHeader(level LogLevel, depth int) []byte {
	now := time.Now()
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		file = "???"
		line = 1
	} else if slash := strings.LastIndex(file, "/"); slash >= 0 {
		file = file[slash+1:]
	}
	buf := &bytes.Buffer{}
	buf.Grow(30)
	_, month, day := now.Date()
	hour, minute, second := now.Clock()
	buf.WriteString(level.Char())
	twoDigits(buf, int(month))
	twoDigits(buf, day)
	buf.WriteByte(' ')
	twoDigits(buf, hour)
	buf.WriteByte(':')
	twoDigits(buf, minute)
	buf.WriteByte(':')
	twoDigits(buf, second)
	buf.WriteByte(' ')
	buf.WriteString(fmt.Sprint(pid))
	buf.WriteByte(' ')
	buf.WriteString(file)
	buf.WriteByte(':')
	buf.WriteString(fmt.Sprint(line))
	buf.WriteString("] ")
	return buf.Bytes()
}

const digits = "0123456789"

func twoDigits(b *bytes.Buffer, d int) {
	c2 := digits[d%10]
	d /= 10
	c1 := digits[d%10]
	b.WriteByte(c1)
	b.WriteByte(c2)
}
