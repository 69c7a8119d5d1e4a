package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer

	debug := ComponentLogger(zerolog.New(&buf).Level(zerolog.DebugLevel), "patch", "apply")
	debug.Debug().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"patch"`)
	assert.Contains(t, buf.String(), `"func":"apply"`)

	buf.Reset()
	info := ComponentLogger(zerolog.New(&buf).Level(zerolog.InfoLevel), "patch", "apply")
	info.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"patch"`)
	assert.NotContains(t, buf.String(), `"func"`)
}
