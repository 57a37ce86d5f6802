package libutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCosDeg(t *testing.T) {
	assert.InDelta(t, 1.0, CosDeg(0), 1e-6)
	assert.InDelta(t, 0.0, CosDeg(90), 1e-6)
	assert.InDelta(t, 0.92388, CosDeg(22.5), 1e-4)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(-3, 1, 45))
	assert.Equal(t, float32(45), Clamp(90, 1, 45))
	assert.Equal(t, float32(10), Clamp(10, 1, 45))
}

func TestApproxEqualVec3(t *testing.T) {
	assert.True(t, ApproxEqualVec3(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3.0000001}, 1e-5))
	assert.False(t, ApproxEqualVec3(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2.1, 3}, 1e-5))
}
