package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	p := Load()

	assert.Equal(t, "", p.String("missing"))
	assert.Equal(t, 0.0, p.Float("missing"))
	assert.Equal(t, 7.5, p.FloatWithFallback("missing", 7.5))
	assert.True(t, p.Bool("missing", true))

	p.SetString("lastDirectory", "/work/projects")
	p.SetFloat("curveSag", 8)
	p.SetBool("confirmQuit", false)

	assert.Equal(t, "/work/projects", p.String("lastDirectory"))
	assert.Equal(t, 8.0, p.Float("curveSag"))
	assert.False(t, p.Bool("confirmQuit", true))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	p.SetString("lastDirectory", "/work/projects")
	p.SetFloat("curveSag", 8)
	require.NoError(t, p.Save())

	reloaded := Load()
	assert.Equal(t, "/work/projects", reloaded.String("lastDirectory"))
	// JSON numbers come back as float64
	assert.Equal(t, 8.0, reloaded.Float("curveSag"))
}
