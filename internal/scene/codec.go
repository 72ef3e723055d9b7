package scene

import (
	"errors"
	"io"
)

// ErrDecodeUnsupported is returned by every attempt to rebuild a scene from
// serialized state. Callers are expected to treat it as fatal.
var ErrDecodeUnsupported = errors.New("scene: restoring from serialized state is not supported")

// Decode always fails with ErrDecodeUnsupported.
func Decode(io.Reader) (*Scene, error) {
	return nil, ErrDecodeUnsupported
}

// UnmarshalBinary always fails with ErrDecodeUnsupported.
func (s *Scene) UnmarshalBinary([]byte) error {
	return ErrDecodeUnsupported
}
