// Package flagutil provides flag.Value implementations for flags this
// module's cmd/ binaries need beyond what the standard flag package
// covers, following the teacher's IPv4Flag pattern.
package flagutil

import "github.com/coreos/minideflate/internal/corelog"

// LogLevelFlag parses a string into a corelog.LogLevel. This type
// implements the flag.Value interface.
type LogLevelFlag struct {
	val corelog.LogLevel
	set bool
}

// Level returns the parsed level, or corelog.INFO if Set was never called.
func (f *LogLevelFlag) Level() corelog.LogLevel {
	if !f.set {
		return corelog.INFO
	}
	return f.val
}

// IsSet reports whether Set has been called successfully.
func (f *LogLevelFlag) IsSet() bool {
	return f.set
}

func (f *LogLevelFlag) Set(v string) error {
	l, err := corelog.ParseLevel(v)
	if err != nil {
		return err
	}
	f.val = l
	f.set = true
	return nil
}

func (f *LogLevelFlag) String() string {
	if !f.set {
		return ""
	}
	return f.val.Char()
}
