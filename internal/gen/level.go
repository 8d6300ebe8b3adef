package gen

import "strings"

// Level is a log level the enforcer exposes as a method.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// AllLevels is the default level set, in the order methods are generated.
var AllLevels = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}

// IsValid reports whether l is a known level.
func (l Level) IsValid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

// Method returns the enforcer method name for the level ("info" -> "Info").
func (l Level) Method() string {
	if l == "" {
		return ""
	}

	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// SlogLevel returns the log/slog constant expression for the level.
func (l Level) SlogLevel() string {
	return "slog.Level" + l.Method()
}

func levelNames() []string {
	names := make([]string, 0, len(AllLevels))
	for _, l := range AllLevels {
		names = append(names, string(l))
	}

	return names
}
