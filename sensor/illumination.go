package sensor

import "github.com/echoflaresat/sensorgeom/vectors"

// IlluminatorPosition returns the absolute illuminator position obtained by
// offsetting surface by direction. The direction is used as given: it must
// already carry the desired length, it is not a unit vector.
func IlluminatorPosition(surface, direction vectors.Vec3) vectors.Vec3 {
	return surface.Add(direction)
}
