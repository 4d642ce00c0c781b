package testutil

import (
	"fmt"
	"sync"
	"testing"
)

// Logger forwards log lines to the test log.
type Logger struct {
	mtx *sync.Mutex
	T   *testing.T
}

func NewLogger(t *testing.T) *Logger {
	return &Logger{
		mtx: new(sync.Mutex),
		T:   t,
	}
}

func (t *Logger) Debug(msg string, keyvals ...interface{}) {
	t.log("DEBUG: "+msg, keyvals)
}

func (t *Logger) Info(msg string, keyvals ...interface{}) {
	t.log("INFO:  "+msg, keyvals)
}

func (t *Logger) Error(msg string, keyvals ...interface{}) {
	t.log("ERROR: "+msg, keyvals)
}

func (t *Logger) log(msg string, keyvals []interface{}) {
	t.T.Helper()
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.T.Log(append([]interface{}{msg}, keyvals...)...)
}

// MockLogger records log lines per level. It is safe for concurrent use.
type MockLogger struct {
	mtx                             sync.Mutex
	DebugLines, InfoLines, ErrLines []string
}

func (t *MockLogger) Debug(msg string, keyvals ...interface{}) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.DebugLines = append(t.DebugLines, fmt.Sprint(append([]interface{}{msg}, keyvals...)...))
}

func (t *MockLogger) Info(msg string, keyvals ...interface{}) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.InfoLines = append(t.InfoLines, fmt.Sprint(append([]interface{}{msg}, keyvals...)...))
}

func (t *MockLogger) Error(msg string, keyvals ...interface{}) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.ErrLines = append(t.ErrLines, fmt.Sprint(append([]interface{}{msg}, keyvals...)...))
}
