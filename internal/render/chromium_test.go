package render

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromiumEngine_StartsBrowserUpFront(t *testing.T) {
	e := &ChromiumEngine{BrowserPath: filepath.Join(t.TempDir(), "no-such-chrome")}
	defer e.Close()

	_, err := e.Export(context.Background(), algebraDoc(), Layout{FontSize: 12})
	var ee *ExportError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, StageRasterize, ee.Stage, "a missing browser fails when the engine starts, not per tab")

	_, err2 := e.Export(context.Background(), algebraDoc(), Layout{FontSize: 12})
	require.ErrorAs(t, err2, &ee)
	assert.Equal(t, err.Error(), err2.Error(), "start failure is remembered")
}
