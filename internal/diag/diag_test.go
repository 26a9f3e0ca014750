package diag

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type testMessage struct {
	level  string
	msg    string
	fields []Field
}

type testLogger struct {
	messages []testMessage
}

func (l *testLogger) Debug(msg string, fields ...Field) {
	l.messages = append(l.messages, testMessage{"debug", msg, fields})
}
func (l *testLogger) Info(msg string, fields ...Field) {
	l.messages = append(l.messages, testMessage{"info", msg, fields})
}
func (l *testLogger) Warn(msg string, fields ...Field) {
	l.messages = append(l.messages, testMessage{"warn", msg, fields})
}
func (l *testLogger) Error(msg string, fields ...Field) {
	l.messages = append(l.messages, testMessage{"error", msg, fields})
}

func TestSetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	custom := &testLogger{}
	SetLogger(custom)
	if GetLogger() != Logger(custom) {
		t.Error("expected GetLogger to return the logger just set")
	}

	SetLogger(nil)
	if _, ok := GetLogger().(*noopLogger); !ok {
		t.Error("nil should reset to the noop logger")
	}
}

func TestGlobalLogFunctions(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	custom := &testLogger{}
	SetLogger(custom)

	Debug("debug msg", F("key", "value"))
	Info("info msg", F("count", 42))
	Warn("warn msg")
	Error("error msg")

	if len(custom.messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(custom.messages))
	}
	if custom.messages[0].level != "debug" || custom.messages[0].msg != "debug msg" {
		t.Errorf("unexpected message 0: %+v", custom.messages[0])
	}
	if custom.messages[1].fields[0].Value != 42 {
		t.Errorf("unexpected field value: %+v", custom.messages[1].fields[0])
	}
}

func TestNoopLoggerNeverPanics(t *testing.T) {
	noop := Noop()
	noop.Debug("test", F("key", "value"))
	noop.Info("test")
	noop.Warn("test")
	noop.Error("test")
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	zlog := zerolog.New(&buf).Level(zerolog.DebugLevel)
	adapter := NewZerologAdapter(zlog)

	adapter.Debug("debug message", F("str", "value"), F("num", 42))
	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("expected output to contain message, got %q", output)
	}
	if !strings.Contains(output, `"str":"value"`) {
		t.Errorf("expected output to contain string field, got %q", output)
	}
	if !strings.Contains(output, `"num":42`) {
		t.Errorf("expected output to contain int field, got %q", output)
	}
}

func TestZerologFieldTypes(t *testing.T) {
	var buf bytes.Buffer
	zlog := zerolog.New(&buf).Level(zerolog.DebugLevel)
	adapter := NewZerologAdapter(zlog)

	adapter.Debug("test",
		F("str", "hello"),
		F("int64", int64(100)),
		F("float64", 3.14),
		F("bool", true),
		F("err", os.ErrNotExist),
	)

	output := buf.String()
	for _, want := range []string{`"str":"hello"`, `"bool":true`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestConcurrentSetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				SetLogger(&testLogger{})
				GetLogger().Debug("test")
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
