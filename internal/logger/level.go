package logger

import (
	"fmt"
	"strings"
)

// Level is the totally ordered severity scale. The numeric order is load
// bearing: threshold checks compare with >=.
type Level int

const (
	// LevelNone never logs; as a threshold it silences the sink.
	LevelNone Level = iota
	LevelDebug
	LevelVerbose
	LevelInfo
	LevelWarning
	LevelError
	// LevelForce always logs, bypassing thresholds and the disabled set.
	LevelForce
)

// levelNameWidth is the length of the longest level name ("Warning"),
// used to pad full names so continuation lines align.
const levelNameWidth = 7

// String returns the full level name.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelDebug:
		return "Debug"
	case LevelVerbose:
		return "Verbose"
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelForce:
		return "Force"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Code returns the fixed-width 3-letter code used in line prefixes.
func (l Level) Code() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelVerbose:
		return "VRB"
	case LevelInfo:
		return "INF"
	case LevelWarning:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelForce:
		return "FRC"
	default:
		return "???"
	}
}

// PaddedName returns the full name padded to the longest name length.
func (l Level) PaddedName() string {
	return fmt.Sprintf("%-*s", levelNameWidth, l.String())
}

// ParseLevel maps a level name to its Level. Matching is case-insensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return LevelNone, nil
	case "debug":
		return LevelDebug, nil
	case "verbose":
		return LevelVerbose, nil
	case "info", "":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "force":
		return LevelForce, nil
	default:
		return LevelNone, fmt.Errorf("unknown log level %q", name)
	}
}
