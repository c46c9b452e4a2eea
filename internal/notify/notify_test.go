package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_WritesTitleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Notify(Notification{Level: LevelWarning, Title: "Test Generation Error", Message: "using your content as entered"})
	c.Notify(Notification{Level: LevelSuccess, Title: "Saved"})

	out := buf.String()
	assert.Contains(t, out, "Test Generation Error")
	assert.Contains(t, out, "using your content as entered")
	assert.Contains(t, out, "Saved")
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Notify(Notification{Level: LevelError, Title: "a"})
	r.Notify(Notification{Level: LevelInfo, Title: "b"})

	sent := r.Sent()
	assert.Len(t, sent, 2)
	assert.Equal(t, LevelError, sent[0].Level)

	sent[0].Title = "changed"
	assert.Equal(t, "a", r.Sent()[0].Title)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}
