package editor_test

import (
	"bytes"
	"testing"

	"github.com/plus3/scenedit/editor"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var out, errs bytes.Buffer
	logger := editor.NewWriterLogger("ed", false, &out, &errs)

	logger.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	logger.SetDebug(true)
	assert.True(t, logger.DebugEnabled())
	logger.Debugf("shown %d", 2)
	logger.Infof("info")
	logger.Warnf("careful")
	logger.Errorf("broken")

	assert.Contains(t, out.String(), "[ed] DEBUG: shown 2")
	assert.Contains(t, out.String(), "[ed] INFO: info")
	assert.NotContains(t, out.String(), "WARN")
	assert.Contains(t, errs.String(), "[ed] WARN: careful")
	assert.Contains(t, errs.String(), "[ed] ERROR: broken")
}

func TestNopLogger(t *testing.T) {
	logger := editor.NewNopLogger()
	logger.SetDebug(true)
	assert.False(t, logger.DebugEnabled())
}
