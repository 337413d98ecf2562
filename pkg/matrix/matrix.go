package matrix

import (
	"sort"

	"github.com/cockroachdb/errors"
	ecan "go.einride.tech/can"
)

// Signal describes a single bit field of a CAN message: where it sits in the
// payload and how its raw value maps to a physical one.
type Signal struct {
	Name      string
	MessageID uint32
	// StartBit is the DBC big-endian (Motorola) start bit: the position of
	// the signal's most significant bit, counted as byteIndex*8 + bitIndex,
	// with bitIndex 7 being the MSB of a byte. Subsequent bits descend to
	// bit 0 and continue at bit 7 of the next higher-indexed byte.
	StartBit  uint8
	BitLength uint8
	Signed    bool
	// Physical value = raw*Scale + Offset.
	Scale  float64
	Offset float64
	// Inclusive bounds on the physical value.
	Min  float64
	Max  float64
	Unit string
}

// Message groups the signals carried by one CAN identifier.
type Message struct {
	ID      uint32
	Name    string
	DLC     uint8
	Sender  string
	Signals []*Signal
}

// Signal looks up a signal of this message by name.
func (m *Message) Signal(name string) (*Signal, bool) {
	for _, s := range m.Signals {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// NewFrame returns a zero-payload frame already carrying the message's
// identifier and DLC. Signal writes never touch those fields again.
func (m *Message) NewFrame() ecan.Frame {
	return ecan.Frame{ID: m.ID, Length: m.DLC}
}

// Matrix is a static signal database: every message and signal of one CAN
// matrix, indexed by identifier and by name.
type Matrix struct {
	byID    map[uint32]*Message
	byName  map[string]*Message
	signals map[string]*Signal
}

// New builds a Matrix from message definitions and validates every
// descriptor (see Validate). Signal names must be unique across the whole
// matrix, message ids and names unique as well.
func New(messages ...*Message) (*Matrix, error) {
	x := &Matrix{
		byID:    make(map[uint32]*Message, len(messages)),
		byName:  make(map[string]*Message, len(messages)),
		signals: make(map[string]*Signal),
	}
	for _, m := range messages {
		if _, dup := x.byID[m.ID]; dup {
			return nil, errors.Newf("duplicate message id 0x%X", m.ID)
		}
		if _, dup := x.byName[m.Name]; dup {
			return nil, errors.Newf("duplicate message name %q", m.Name)
		}
		x.byID[m.ID] = m
		x.byName[m.Name] = m
		for _, s := range m.Signals {
			if _, dup := x.signals[s.Name]; dup {
				return nil, errors.Newf("duplicate signal name %q", s.Name)
			}
			x.signals[s.Name] = s
		}
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return x, nil
}

// must is used by generated matrix tables, where a validation failure is a
// generator bug rather than a runtime condition.
func must(x *Matrix, err error) *Matrix {
	if err != nil {
		panic(err)
	}
	return x
}

// MessageByID looks up a message by CAN identifier.
func (x *Matrix) MessageByID(id uint32) (*Message, bool) {
	m, ok := x.byID[id]
	return m, ok
}

// MessageByName looks up a message by its DBC name.
func (x *Matrix) MessageByName(name string) (*Message, bool) {
	m, ok := x.byName[name]
	return m, ok
}

// SignalByName looks up a signal anywhere in the matrix.
func (x *Matrix) SignalByName(name string) (*Signal, bool) {
	s, ok := x.signals[name]
	return s, ok
}

// Messages returns all messages ordered by identifier.
func (x *Matrix) Messages() []*Message {
	out := make([]*Message, 0, len(x.byID))
	for _, m := range x.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks every descriptor for internal consistency: sane DLC and
// bit length, the full bit span inside the payload, non-zero scale, ordered
// bounds, matching message ids, and no overlapping signals within a message.
func (x *Matrix) Validate() error {
	for _, m := range x.byID {
		if m.DLC == 0 || m.DLC > 8 {
			return errors.Newf("message %s: invalid DLC %d", m.Name, m.DLC)
		}
		var used [64]bool
		for _, s := range m.Signals {
			if s.MessageID != m.ID {
				return errors.Newf("signal %s: message id 0x%X does not match %s (0x%X)",
					s.Name, s.MessageID, m.Name, m.ID)
			}
			if s.BitLength == 0 || s.BitLength > 64 {
				return errors.Newf("signal %s: invalid bit length %d", s.Name, s.BitLength)
			}
			if s.Scale == 0 {
				return errors.Newf("signal %s: zero scale", s.Name)
			}
			if s.Min > s.Max {
				return errors.Newf("signal %s: min %v above max %v", s.Name, s.Min, s.Max)
			}
			byteIdx := int(s.StartBit) / 8
			bitIdx := int(s.StartBit) % 8
			for i := uint8(0); i < s.BitLength; i++ {
				if byteIdx >= int(m.DLC) {
					return errors.Newf("signal %s: bit span leaves the %d-byte payload", s.Name, m.DLC)
				}
				pos := byteIdx*8 + bitIdx
				if used[pos] {
					return errors.Newf("message %s: overlapping signals at byte %d bit %d",
						m.Name, byteIdx, bitIdx)
				}
				used[pos] = true
				bitIdx--
				if bitIdx < 0 {
					bitIdx = 7
					byteIdx++
				}
			}
		}
	}
	return nil
}
