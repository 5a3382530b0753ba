package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eytandecker/at502-perf/internal/performance"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Rate of Climb vs Altitude (OAT: 15°C, Weight: 9400 lbs)", Title(15, 9400))
}

func TestRenderSVG(t *testing.T) {
	profile := performance.ClimbProfile(15, 9400, 50, 10000)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "svg", profile, 15, 9400, DefaultOptions()))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderPNG(t *testing.T) {
	profile := performance.ClimbProfile(30, 8000, 10, 10000)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "png", profile, 30, 8000, DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "gif", performance.ClimbProfile(15, 9400, 5, 10000), 15, 9400, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = Render(&buf, "svg", nil, 15, 9400, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("png"))
	assert.Equal(t, "image/svg+xml", ContentType("svg"))
}
