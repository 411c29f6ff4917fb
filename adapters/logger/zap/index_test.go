package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		v    string
		want zapcore.Level
	}{
		{v: "error", want: zap.ErrorLevel},
		{v: "warn", want: zap.WarnLevel},
		{v: "info", want: zap.InfoLevel},
		{v: "debug", want: zap.DebugLevel},
		{v: "", want: zap.WarnLevel},
		{v: "verbose", want: zap.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			if got := ParseLevel(tt.v); got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSt_Errorw(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	lg := newFromLogger(zap.New(core))

	lg.Errorw("Fail to send", errors.New("boom"), "phone", "+919999999999")
	lg.Infow("Sent", "phone", "+919999999999")

	if logs.Len() != 2 {
		t.Fatalf("got %d entries, want 2", logs.Len())
	}

	entry := logs.All()[0]
	if entry.Level != zap.ErrorLevel {
		t.Errorf("level = %v, want error", entry.Level)
	}

	fields := entry.ContextMap()
	if fields["phone"] != "+919999999999" {
		t.Errorf("phone = %v", fields["phone"])
	}
	if fields["error"] != "boom" {
		t.Errorf("error = %v, want boom", fields["error"])
	}
}
