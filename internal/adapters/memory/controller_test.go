package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/pkg/geometry"
)

func TestController_Frames(t *testing.T) {
	ctx := context.Background()
	c := NewController(nil)

	f, err := c.Frame(ctx, domain.ToolFrame, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.ToolFrame, f.Kind)

	f.Pose = geometry.NewPose(1, 2, 3, 4, 5, 6)
	require.NoError(t, c.UpdateFrame(ctx, f))

	got, err := c.Frame(ctx, domain.ToolFrame, 3)
	require.NoError(t, err)
	assert.Equal(t, f.Pose, got.Pose)

	// The user frame with the same number is untouched.
	uf, err := c.Frame(ctx, domain.UserFrame, 3)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pose{}, uf.Pose)

	_, err = c.Frame(ctx, domain.ToolFrame, 31)
	assert.True(t, errors.Is(err, domain.ErrFrameNotFound))
}

func TestController_Registers(t *testing.T) {
	ctx := context.Background()
	c := NewController(NewState())

	v, err := c.ReadR(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	require.NoError(t, c.WriteR(ctx, 7, 2.5))
	v, _ = c.ReadR(ctx, 7)
	assert.Equal(t, 2.5, v)

	require.NoError(t, c.WriteSR(ctx, 1, "1,2,3"))
	s, _ := c.ReadSR(ctx, 1)
	assert.Equal(t, "1,2,3", s)

	err = c.WritePR(ctx, domain.PoseRegister{ID: 9, Kind: domain.Cartesian})
	assert.True(t, errors.Is(err, domain.ErrRegisterNotFound), "WritePR must not create registers")

	_, err = c.ReadPR(ctx, 9)
	assert.True(t, errors.Is(err, domain.ErrRegisterNotFound))
}

func TestController_Disconnect(t *testing.T) {
	c := NewController(nil)
	assert.True(t, c.Connected())

	c.Disconnect()
	assert.False(t, c.Connected())

	_, err := c.ReadR(context.Background(), 1)
	assert.True(t, errors.Is(err, domain.ErrNotConnected))
}

func TestController_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewController(nil).ReadR(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
