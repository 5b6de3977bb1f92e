package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a log verbosity. Higher levels include everything below them.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

var levelFromString = map[string]Level{
	"error": LevelError,
	"warn":  LevelWarn,
	"info":  LevelInfo,
	"debug": LevelDebug,
}

type logger struct {
	mu     sync.RWMutex
	level  Level
	stdLog *log.Logger
	errLog *log.Logger
}

var std = &logger{
	level:  LevelInfo,
	stdLog: log.New(os.Stdout, "", log.LstdFlags),
	errLog: log.New(os.Stderr, "", log.LstdFlags),
}

// SetLevel sets the global log level.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetLevelFromString sets the level from one of error, warn, info, debug.
func SetLevelFromString(s string) error {
	level, err := ParseLevel(s)
	if err != nil {
		return err
	}
	SetLevel(level)
	return nil
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	level, ok := levelFromString[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("invalid log level: %q (valid: error, warn, info, debug)", s)
	}
	return level, nil
}

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.level
}

func (l Level) String() string {
	return levelNames[l]
}

// SetOutput redirects both streams, mostly for tests.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.stdLog.SetOutput(w)
	std.errLog.SetOutput(w)
}

func enabled(level Level) bool {
	return level <= GetLevel()
}

func Debug(format string, args ...any) {
	if enabled(LevelDebug) {
		std.stdLog.Printf("[DEBUG] "+format, args...)
	}
}

func Info(format string, args ...any) {
	if enabled(LevelInfo) {
		std.stdLog.Printf("[INFO] "+format, args...)
	}
}

func Warn(format string, args ...any) {
	if enabled(LevelWarn) {
		std.stdLog.Printf("[WARN] "+format, args...)
	}
}

func Error(format string, args ...any) {
	if enabled(LevelError) {
		std.errLog.Printf("[ERROR] "+format, args...)
	}
}

// Fatal logs and exits with status 1.
func Fatal(format string, args ...any) {
	std.errLog.Printf("[FATAL] "+format, args...)
	os.Exit(1)
}
