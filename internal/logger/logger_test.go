package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	SetLevel("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetLevel("loud")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewOutputFormat(t *testing.T) {
	tests := []struct {
		env      string
		wantJSON bool
	}{
		{env: "production", wantJSON: true},
		{env: "development", wantJSON: false},
		{env: "staging", wantJSON: false},
		{env: "", wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.env, &buf)
			l.Info().Str("course", "bio101").Msg("course created")

			out := bytes.TrimSpace(buf.Bytes())
			assert.Contains(t, string(out), "course created")
			assert.Equal(t, tt.wantJSON, json.Valid(out), string(out))
		})
	}
}
