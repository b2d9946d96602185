package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{
			name:  "debug",
			level: "debug",
			want:  logrus.DebugLevel,
		},
		{
			name:  "warning",
			level: "warning",
			want:  logrus.WarnLevel,
		},
		{
			name:  "unknown",
			level: "chatty",
			want:  logrus.InfoLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")
	l.WithField("games", 10).Info("estimated")
	assert.Contains(t, buf.String(), "msg=estimated")
	assert.Contains(t, buf.String(), "games=10")
}

func TestNewReportsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "chatty")
	assert.Contains(t, buf.String(), `invalid log level \"chatty\"`)
}
