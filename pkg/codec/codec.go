// Package codec converts between raw CAN frame payloads and physical signal
// values, driven by the static descriptors in pkg/matrix. All operations are
// pure: they touch only the caller-supplied frame and report failures as
// errors, never panics.
package codec

import (
	"math"

	"github.com/cockroachdb/errors"
	ecan "go.einride.tech/can"

	"github.com/vm2tools/canmatrix/pkg/matrix"
)

var (
	// ErrNilFrame reports a nil frame pointer.
	ErrNilFrame = errors.New("codec: nil frame")
	// ErrIDMismatch reports a frame whose identifier does not belong to the
	// signal's message. Expected in normal bus operation; callers skip.
	ErrIDMismatch = errors.New("codec: frame id does not match signal's message")
	// ErrOutOfRange reports a physical value outside the signal's declared
	// [Min, Max] bounds, either decoded from the wire or requested on encode.
	ErrOutOfRange = errors.New("codec: physical value out of range")
	// ErrRawOverflow reports an encode whose rounded raw value is negative
	// or needs more bits than the signal carries. The frame is not modified.
	ErrRawOverflow = errors.New("codec: raw value does not fit signal bit length")
)

// rangeTolerance absorbs float rounding at the range edges; 32766 * 0.01
// lands a hair above 327.66 and must still count as in range.
const rangeTolerance = 1e-9

// Decode extracts the signal's physical value from the frame. The frame's
// identifier must match the signal's message. An out-of-range value is
// returned together with ErrOutOfRange; callers must treat it as untrusted.
func Decode(f *ecan.Frame, sig *matrix.Signal) (float64, error) {
	raw, err := DecodeRaw(f, sig)
	if err != nil {
		return 0, err
	}
	value := physical(raw, sig)
	if value < sig.Min-rangeTolerance || value > sig.Max+rangeTolerance {
		return value, errors.Wrapf(ErrOutOfRange,
			"signal %s: %v outside [%v, %v]", sig.Name, value, sig.Min, sig.Max)
	}
	return value, nil
}

// DecodeRaw extracts the signal's raw bit field, before scaling. Signed
// signals are returned as their unsigned bit pattern.
func DecodeRaw(f *ecan.Frame, sig *matrix.Signal) (uint64, error) {
	if f == nil {
		return 0, ErrNilFrame
	}
	if f.ID != sig.MessageID {
		return 0, errors.Wrapf(ErrIDMismatch,
			"signal %s: want 0x%X, frame has 0x%X", sig.Name, sig.MessageID, f.ID)
	}
	return ExtractBits(&f.Data, sig.StartBit, sig.BitLength), nil
}

// Encode writes the physical value into the frame's bit span for the signal.
// The frame must already carry the signal's message identifier (see
// matrix.Message.NewFrame or FrameBuilder); Encode never rewrites id or DLC.
// On any error the frame is left byte-identical.
func Encode(f *ecan.Frame, sig *matrix.Signal, value float64) error {
	if f == nil {
		return ErrNilFrame
	}
	if f.ID != sig.MessageID {
		return errors.Wrapf(ErrIDMismatch,
			"signal %s: want 0x%X, frame has 0x%X", sig.Name, sig.MessageID, f.ID)
	}
	if value < sig.Min-rangeTolerance || value > sig.Max+rangeTolerance {
		return errors.Wrapf(ErrOutOfRange,
			"signal %s: %v outside [%v, %v]", sig.Name, value, sig.Min, sig.Max)
	}
	raw, err := rawFromPhysical(value, sig)
	if err != nil {
		return err
	}
	InsertBits(&f.Data, sig.StartBit, sig.BitLength, raw)
	return nil
}

// EncodeRaw writes a raw bit pattern without the affine transform or range
// check. Signed values must already be in two's complement form.
func EncodeRaw(f *ecan.Frame, sig *matrix.Signal, raw uint64) error {
	if f == nil {
		return ErrNilFrame
	}
	if f.ID != sig.MessageID {
		return errors.Wrapf(ErrIDMismatch,
			"signal %s: want 0x%X, frame has 0x%X", sig.Name, sig.MessageID, f.ID)
	}
	if sig.BitLength < 64 && raw >= uint64(1)<<sig.BitLength {
		return errors.Wrapf(ErrRawOverflow,
			"signal %s: raw %d exceeds %d bits", sig.Name, raw, sig.BitLength)
	}
	InsertBits(&f.Data, sig.StartBit, sig.BitLength, raw)
	return nil
}

// physical applies the affine transform, sign-extending first when needed.
func physical(raw uint64, sig *matrix.Signal) float64 {
	if sig.Signed {
		return float64(signExtend(raw, sig.BitLength))*sig.Scale + sig.Offset
	}
	return float64(raw)*sig.Scale + sig.Offset
}

// rawFromPhysical inverts the transform, rounding to the nearest step. A
// result that cannot be represented in BitLength bits is rejected rather
// than silently truncated.
func rawFromPhysical(value float64, sig *matrix.Signal) (uint64, error) {
	scaled := math.Round((value - sig.Offset) / sig.Scale)
	if sig.Signed {
		lo := -math.Ldexp(1, int(sig.BitLength)-1)
		hi := math.Ldexp(1, int(sig.BitLength)-1) - 1
		if scaled < lo || scaled > hi {
			return 0, errors.Wrapf(ErrRawOverflow,
				"signal %s: raw %v exceeds signed %d bits", sig.Name, scaled, sig.BitLength)
		}
		mask := uint64(math.MaxUint64)
		if sig.BitLength < 64 {
			mask = uint64(1)<<sig.BitLength - 1
		}
		return uint64(int64(scaled)) & mask, nil
	}
	if scaled < 0 || (sig.BitLength < 64 && scaled >= math.Ldexp(1, int(sig.BitLength))) {
		return 0, errors.Wrapf(ErrRawOverflow,
			"signal %s: raw %v exceeds %d bits", sig.Name, scaled, sig.BitLength)
	}
	return uint64(scaled), nil
}

// signExtend interprets the low length bits of raw as two's complement.
func signExtend(raw uint64, length uint8) int64 {
	if length == 0 || length >= 64 {
		return int64(raw)
	}
	if raw&(uint64(1)<<(length-1)) != 0 {
		raw |= ^(uint64(1)<<length - 1)
	}
	return int64(raw)
}
