// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	t.Cleanup(func() {
		log = newLogger()
	})
	return &buf
}

func TestInit(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"loud", true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := Init(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.level, log.GetLevel().String()[:len(tt.level)])
		})
	}
	log = newLogger()
}

func TestLevelsAndFields(t *testing.T) {
	buf := captureLog(t)
	log.SetLevel(logrus.DebugLevel)

	Debug("parsed form", Fields{"questions": 12})
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "questions=12")

	buf.Reset()
	Info("saved")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "msg=saved")

	buf.Reset()
	Warn("update check failed", Fields{"url": "x"})
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "url=x")

	buf.Reset()
	Error("save failed", errors.New("disk full"))
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), `error="disk full"`)
}

func TestDefaultLevelHidesInfo(t *testing.T) {
	buf := captureLog(t)
	log.SetLevel(logrus.WarnLevel)

	Info("hidden")
	Debug("hidden")
	assert.Empty(t, buf.String())
}
