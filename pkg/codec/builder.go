package codec

import (
	"github.com/cockroachdb/errors"
	ecan "go.einride.tech/can"

	"github.com/vm2tools/canmatrix/pkg/matrix"
)

// ErrUnknownSignal reports a signal name not defined for the message.
var ErrUnknownSignal = errors.New("codec: unknown signal")

// FrameBuilder packs several signals of one message into a single frame.
// The identifier and DLC are set exactly once, when the builder is created;
// each Set only touches its own signal's bit span. The first failure sticks
// and is reported by Finish.
type FrameBuilder struct {
	msg   *matrix.Message
	frame ecan.Frame
	err   error
}

// BeginMessage starts a zero-payload frame for the message.
func BeginMessage(msg *matrix.Message) *FrameBuilder {
	return &FrameBuilder{msg: msg, frame: msg.NewFrame()}
}

// Set encodes the named signal's physical value into the frame.
func (b *FrameBuilder) Set(name string, value float64) *FrameBuilder {
	if b.err != nil {
		return b
	}
	sig, ok := b.msg.Signal(name)
	if !ok {
		b.err = errors.Wrapf(ErrUnknownSignal, "message %s has no signal %q", b.msg.Name, name)
		return b
	}
	b.err = Encode(&b.frame, sig, value)
	return b
}

// SetRaw writes the named signal's raw bit pattern, skipping the transform.
func (b *FrameBuilder) SetRaw(name string, raw uint64) *FrameBuilder {
	if b.err != nil {
		return b
	}
	sig, ok := b.msg.Signal(name)
	if !ok {
		b.err = errors.Wrapf(ErrUnknownSignal, "message %s has no signal %q", b.msg.Name, name)
		return b
	}
	b.err = EncodeRaw(&b.frame, sig, raw)
	return b
}

// Finish returns the packed frame, or the first error any Set produced.
func (b *FrameBuilder) Finish() (ecan.Frame, error) {
	if b.err != nil {
		return ecan.Frame{}, b.err
	}
	return b.frame, nil
}
