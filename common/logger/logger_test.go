package logger

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		value string
		want  LogLevel
	}{
		{value: "ERROR", want: ERROR},
		{value: "warn", want: WARN},
		{value: "Info", want: INFO},
		{value: "debug", want: DEBUG},
		{value: "TRACE", want: TRACE},
		{value: "verbose", want: INFO},
		{value: "", want: INFO},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			a.Equal(tt.want, StringToLogLevel(tt.value))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("ERROR", ERROR.String())
	a.Equal("TRACE", TRACE.String())
	a.Equal("UNKNOWN", LogLevel(42).String())
}

func TestIsLogLevel(t *testing.T) {
	a := assert.New(t)
	defer initializeWriters(ERROR, nullWriter, nullWriter)

	errorOut := &bytes.Buffer{}
	out := &bytes.Buffer{}
	initializeWriters(INFO, errorOut, out)

	a.True(IsLogLevel(ERROR))
	a.True(IsLogLevel(INFO))
	a.False(IsLogLevel(DEBUG))
	a.False(IsLogLevel(TRACE))

	Error.Print("broken")
	Info.Print("shown")
	Debug.Print("hidden")

	a.Contains(errorOut.String(), "ERROR: ")
	a.Contains(errorOut.String(), "broken")
	a.Contains(out.String(), "shown")
	a.NotContains(out.String(), "hidden")
}
