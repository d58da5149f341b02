package stream

import (
	"encoding/binary"
	"errors"
	"math"
	"sort"
)

var (
	// ErrFrameTooLarge is returned when a frame cannot fit the binary layout.
	ErrFrameTooLarge  = errors.New("frame too large to encode")
	ErrFrameTruncated = errors.New("frame data truncated")
)

// Frame holds the sampled channels for one progress value. Channels whose
// track is absent are left out.
type Frame struct {
	Progress   float64              `json:"progress"`
	Tracks     map[string][]float64 `json:"tracks"`
	Attributes map[string]string    `json:"attributes"`
}

// NewFrame creates an empty Frame at the given progress.
func NewFrame(progress float64) *Frame {
	f := new(Frame)
	f.Progress = progress
	f.Tracks = make(map[string][]float64)
	f.Attributes = make(map[string]string)
	return f
}

// Names returns the channel names in the frame in sorted order.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.Tracks))
	for name := range f.Tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalBinary encodes the frame for a renderer: a uint16 channel count
// followed by, per channel in name order, the name length and name, the
// vector length and the float64 components. All integers are little endian.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	names := f.Names()
	if len(names) > math.MaxUint16 {
		return nil, ErrFrameTooLarge
	}

	data = make([]byte, 2, 2+len(names)*32)
	binary.LittleEndian.PutUint16(data, uint16(len(names)))
	for _, name := range names {
		v := f.Tracks[name]
		if len(name) > math.MaxUint8 || len(v) > math.MaxUint8 {
			return nil, ErrFrameTooLarge
		}

		data = append(data, uint8(len(name)))
		data = append(data, name...)
		data = append(data, uint8(len(v)))
		for _, x := range v {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(x))
			data = append(data, b[:]...)
		}
	}

	return data, nil
}

// UnmarshalBinary decodes data written by MarshalBinary. Attributes and
// progress are not part of the encoding.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return ErrFrameTruncated
	}

	count := int(binary.LittleEndian.Uint16(data))
	data = data[2:]
	f.Tracks = make(map[string][]float64, count)
	for i := 0; i < count; i++ {
		if len(data) < 1 {
			return ErrFrameTruncated
		}
		n := int(data[0])
		if len(data) < 1+n+1 {
			return ErrFrameTruncated
		}
		name := string(data[1 : 1+n])
		arity := int(data[1+n])
		data = data[2+n:]

		if len(data) < arity*8 {
			return ErrFrameTruncated
		}
		v := make([]float64, arity)
		for j := range v {
			v[j] = math.Float64frombits(binary.LittleEndian.Uint64(data[j*8:]))
		}
		data = data[arity*8:]
		f.Tracks[name] = v
	}

	return nil
}
