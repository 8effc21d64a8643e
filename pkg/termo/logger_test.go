package termo

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(buf, LogWarn)

	logger.Debug("invisible debug")
	logger.Info("invisible info")
	logger.Warn("visible warn")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "invisible") {
		t.Errorf("low-level lines leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] visible warn") {
		t.Errorf("warn line missing: %s", out)
	}
	if !strings.Contains(out, "[ERROR] visible error") {
		t.Errorf("error line missing: %s", out)
	}
}

func TestLoggerOff(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(buf, LogOff)

	logger.Error("nothing at all")
	if buf.Len() != 0 {
		t.Errorf("off logger wrote: %s", buf.String())
	}
}

func TestLoggerFields(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(buf, LogDebug).WithField("key", "#EMPRESA#")

	logger.Warn("placeholder never matched")

	out := buf.String()
	if !strings.Contains(out, "key=#EMPRESA#") {
		t.Errorf("field missing from line: %s", out)
	}
}

func TestLoggerWithFieldsIsolated(t *testing.T) {
	buf := new(bytes.Buffer)
	base := NewLogger(buf, LogDebug)
	derived := base.WithFields(Fields{"entries": 12})

	base.Info("no fields here")
	if strings.Contains(buf.String(), "entries=") {
		t.Errorf("field leaked into parent logger: %s", buf.String())
	}

	buf.Reset()
	derived.Info("with fields")
	if !strings.Contains(buf.String(), "entries=12") {
		t.Errorf("derived field missing: %s", buf.String())
	}
}

func TestLoggerFormats(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(buf, LogInfo)

	logger.Info("generated %s with %d substitutions", "Termo_Ajuste_novo_empresa.docx", 7)
	if !strings.Contains(buf.String(), "generated Termo_Ajuste_novo_empresa.docx with 7 substitutions") {
		t.Errorf("formatting failed: %s", buf.String())
	}
}
