package sensor

import (
	"testing"

	"github.com/echoflaresat/sensorgeom/vectors"
)

func TestIlluminatorPosition(t *testing.T) {
	surface := vectors.Vec3{X: 0, Y: 1, Z: 0}
	direction := vectors.Vec3{X: -1, Y: 0, Z: 1}

	got := IlluminatorPosition(surface, direction)
	want := vectors.Vec3{X: -1, Y: 1, Z: 1}
	if got != want {
		t.Errorf("IlluminatorPosition() = %v, want %v", got, want)
	}
}

func TestIlluminatorPositionNotNormalized(t *testing.T) {
	surface := vectors.Vec3{X: 1737.4}
	direction := vectors.Vec3{X: 1.496e8, Y: -2e6}

	got := IlluminatorPosition(surface, direction)
	want := vectors.Vec3{X: 1737.4 + 1.496e8, Y: -2e6}
	if got != want {
		t.Errorf("IlluminatorPosition() = %v, want %v", got, want)
	}
}
