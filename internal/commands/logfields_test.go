package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/pkg/log"
)

func TestFrameUpdateLogsPoseObject(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewZerologAdapterWithLogger(zerolog.New(&buf))
	h, c, _ := newTestHandler(t, WithLogger(logger))

	pr, err := c.ReadPR(context.Background(), 7)
	require.NoError(t, err)
	pr.Pose.X, pr.Pose.R = 12.5, -30
	require.NoError(t, c.WritePR(context.Background(), pr))

	_, err = h.SetFrameFromPR(context.Background(), domain.ToolFrame, 4, 7)
	require.NoError(t, err)

	var line map[string]interface{}
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &m))
		if m["message"] == "frame updated from PR" {
			line = m
		}
	}
	require.NotNil(t, line, "no frame update line in %s", buf.String())

	pose, ok := line["pose"].(map[string]interface{})
	require.True(t, ok, "pose = %v", line["pose"])
	assert.Equal(t, 12.5, pose["x"])
	assert.Equal(t, -30.0, pose["r"])
}
