package codec

import (
	"github.com/cockroachdb/errors"
	ecan "go.einride.tech/can"

	"github.com/vm2tools/canmatrix/pkg/matrix"
)

var (
	// ErrUnknownMessage reports a frame identifier the matrix does not define.
	ErrUnknownMessage = errors.New("codec: unknown message id")
	// ErrFrameShape reports a frame whose DLC or frame type does not match
	// the message definition.
	ErrFrameShape = errors.New("codec: frame shape mismatch")
)

// SignalValue is one decoded signal: the raw bit field, the physical value,
// and whether the physical value lies within the declared bounds. Values
// with InRange false must be treated as untrusted.
type SignalValue struct {
	Name     string
	Raw      uint64
	Physical float64
	Unit     string
	InRange  bool
}

// DecodedMessage holds every signal of one decoded frame.
type DecodedMessage struct {
	Message *matrix.Message
	Frame   ecan.Frame
	Signals map[string]SignalValue
}

// Decoder decodes whole frames against a signal matrix.
type Decoder struct {
	mx *matrix.Matrix
}

func NewDecoder(mx *matrix.Matrix) *Decoder {
	return &Decoder{mx: mx}
}

// DecodeFrame decodes all signals of the message matching the frame's
// identifier. Out-of-range signals are reported with InRange false rather
// than failing the whole frame.
func (d *Decoder) DecodeFrame(f *ecan.Frame) (*DecodedMessage, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	msg, ok := d.mx.MessageByID(f.ID)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMessage, "0x%X", f.ID)
	}
	if f.Length != msg.DLC || f.IsRemote {
		return nil, errors.Wrapf(ErrFrameShape,
			"message %s: want DLC %d, frame has %d", msg.Name, msg.DLC, f.Length)
	}

	out := &DecodedMessage{
		Message: msg,
		Frame:   *f,
		Signals: make(map[string]SignalValue, len(msg.Signals)),
	}
	for _, sig := range msg.Signals {
		raw := ExtractBits(&f.Data, sig.StartBit, sig.BitLength)
		value := physical(raw, sig)
		out.Signals[sig.Name] = SignalValue{
			Name:     sig.Name,
			Raw:      raw,
			Physical: value,
			Unit:     sig.Unit,
			InRange:  value >= sig.Min-rangeTolerance && value <= sig.Max+rangeTolerance,
		}
	}
	return out, nil
}
