package core

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDataPoints(t *testing.T) {
	require.Equal(t, []string{"name", "email"}, ParseDataPoints("name,email"))
	require.Equal(t, []string{"name", "email"}, ParseDataPoints(" name , email "))
	require.Equal(t, []string{"name"}, ParseDataPoints("name,,"))
	require.Empty(t, ParseDataPoints(""))
	require.Empty(t, ParseDataPoints(" , "))
}

func TestCheckDataPointsWarnsOnUnsupportedOnly(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	CheckDataPoints(log, "name,email,phone")

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "data_point=phone"))
	require.NotContains(t, out, "data_point=name")
	require.NotContains(t, out, "data_point=email")
}

func TestCheckDataPointsSilentOnDefault(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	CheckDataPoints(log, DefaultDataPoints)
	require.Empty(t, buf.String())
}
