package codec

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	ecan "go.einride.tech/can"

	"github.com/vm2tools/canmatrix/pkg/matrix"
)

func mustSignal(t *testing.T, name string) *matrix.Signal {
	t.Helper()
	sig, ok := matrix.VM2().SignalByName(name)
	if !ok {
		t.Fatalf("signal %s not in matrix", name)
	}
	return sig
}

func mustMessage(t *testing.T, name string) *matrix.Message {
	t.Helper()
	msg, ok := matrix.VM2().MessageByName(name)
	if !ok {
		t.Fatalf("message %s not in matrix", name)
	}
	return msg
}

func TestDecodeEngineTemp(t *testing.T) {
	// EMS_2 byte 2 carries the coolant temperature: 152 * 0.75 - 48 = 66.
	frame := ecan.Frame{ID: 0x320, Length: 8}
	frame.Data[2] = 0x98

	got, err := Decode(&frame, mustSignal(t, "EMS2_N_EngineTemp"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != 66.0 {
		t.Errorf("Decode = %v, want 66.0", got)
	}
}

func TestEncodeVehicleSpeed(t *testing.T) {
	sig := mustSignal(t, "BR1_N_VehicleSpeed")
	msg := mustMessage(t, "BRAKE_1")

	frame := msg.NewFrame()
	if err := Encode(&frame, sig, 100.00); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// raw = round(100.00 / 0.01) = 10000 = 0x2710, 15 bits at byte 4 bit 6.
	if frame.Data[4] != 0x27 || frame.Data[5] != 0x10 {
		t.Errorf("payload = % X, want bytes 4..5 = 27 10", frame.Data)
	}
	got, err := Decode(&frame, sig)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if math.Abs(got-100.00) > 1e-9 {
		t.Errorf("Decode = %v, want 100.00", got)
	}
}

func TestEncodeSetTempAtMinimum(t *testing.T) {
	sig := mustSignal(t, "AUDIO7_St_SetTempVoiceControl_L")
	msg := mustMessage(t, "AUDIO_7")

	frame := msg.NewFrame()
	frame.Data = ecan.Data{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if err := Encode(&frame, sig, 18.0); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// 18.0 is raw 0: five cleared bits at byte 2, bits 7..3.
	if raw, _ := DecodeRaw(&frame, sig); raw != 0 {
		t.Errorf("raw = %d, want 0", raw)
	}
	got, err := Decode(&frame, sig)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != 18.0 {
		t.Errorf("Decode = %v, want 18.0", got)
	}
}

func TestRangeEnforcement(t *testing.T) {
	tests := []struct {
		signal string
		value  float64
		ok     bool
	}{
		{"EMS2_N_EngineTemp", -48, true},
		{"EMS2_N_EngineTemp", 142.5, true},
		{"EMS2_N_EngineTemp", -48.75, false},
		{"EMS2_N_EngineTemp", 143.25, false},
		{"BR1_N_VehicleSpeed", 0, true},
		{"BR1_N_VehicleSpeed", 327.66, true},
		{"BR1_N_VehicleSpeed", 327.67, false},
		{"BR1_N_VehicleSpeed", -0.01, false},
		{"AUDIO7_St_SetTempVoiceControl_L", 18, true},
		{"AUDIO7_St_SetTempVoiceControl_L", 32, true},
		{"AUDIO7_St_SetTempVoiceControl_L", 17.5, false},
		{"AUDIO7_St_SetTempVoiceControl_L", 32.5, false},
	}
	for _, tt := range tests {
		sig := mustSignal(t, tt.signal)
		msg, _ := matrix.VM2().MessageByID(sig.MessageID)
		frame := msg.NewFrame()
		err := Encode(&frame, sig, tt.value)
		if tt.ok && err != nil {
			t.Errorf("Encode(%s, %v): unexpected error %v", tt.signal, tt.value, err)
		}
		if !tt.ok {
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Encode(%s, %v): got %v, want ErrOutOfRange", tt.signal, tt.value, err)
			}
			if frame.Data != (ecan.Data{}) {
				t.Errorf("Encode(%s, %v): frame modified on error", tt.signal, tt.value)
			}
		}
	}
}

func TestDecodeOutOfRangeReportsError(t *testing.T) {
	// AUDIO7 left set temperature: raw 31 maps to 33.5, above max 32.
	sig := mustSignal(t, "AUDIO7_St_SetTempVoiceControl_L")
	frame := ecan.Frame{ID: 0x347, Length: 8}
	frame.Data[2] = 0xF8

	value, err := Decode(&frame, sig)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Decode = %v, want ErrOutOfRange", err)
	}
	if value != 33.5 {
		t.Errorf("out-of-range value = %v, want 33.5", value)
	}
}

func TestIDGating(t *testing.T) {
	sig := mustSignal(t, "EMS2_N_EngineTemp")
	frame := ecan.Frame{ID: 0x321, Length: 8}
	frame.Data[2] = 0x98

	if _, err := Decode(&frame, sig); !errors.Is(err, ErrIDMismatch) {
		t.Errorf("Decode wrong id = %v, want ErrIDMismatch", err)
	}
	if err := Encode(&frame, sig, 66.0); !errors.Is(err, ErrIDMismatch) {
		t.Errorf("Encode wrong id = %v, want ErrIDMismatch", err)
	}
}

func TestNilFrame(t *testing.T) {
	sig := mustSignal(t, "EMS2_N_EngineTemp")
	if _, err := Decode(nil, sig); !errors.Is(err, ErrNilFrame) {
		t.Errorf("Decode(nil) = %v, want ErrNilFrame", err)
	}
	if err := Encode(nil, sig, 0); !errors.Is(err, ErrNilFrame) {
		t.Errorf("Encode(nil) = %v, want ErrNilFrame", err)
	}
}

func TestEncodeRawOverflow(t *testing.T) {
	// A descriptor whose physical range admits more steps than its bit field
	// can hold; the encoder must reject rather than silently wrap.
	sig := &matrix.Signal{
		Name: "Overflowing", MessageID: 0x100,
		StartBit: 7, BitLength: 4,
		Scale: 1, Min: 0, Max: 100,
	}
	frame := ecan.Frame{ID: 0x100, Length: 8}
	if err := Encode(&frame, sig, 50); !errors.Is(err, ErrRawOverflow) {
		t.Errorf("Encode = %v, want ErrRawOverflow", err)
	}
	if frame.Data != (ecan.Data{}) {
		t.Error("frame modified on overflow")
	}

	if err := EncodeRaw(&frame, sig, 16); !errors.Is(err, ErrRawOverflow) {
		t.Errorf("EncodeRaw = %v, want ErrRawOverflow", err)
	}
}

func TestSignedSignal(t *testing.T) {
	sig := &matrix.Signal{
		Name: "SignedTemp", MessageID: 0x200,
		StartBit: 15, BitLength: 8, Signed: true,
		Scale: 0.5, Min: -64, Max: 63.5,
	}

	frame := ecan.Frame{ID: 0x200, Length: 8}
	if err := Encode(&frame, sig, -1.5); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// raw = -3, two's complement in 8 bits.
	if frame.Data[1] != 0xFD {
		t.Errorf("payload byte 1 = %#x, want 0xFD", frame.Data[1])
	}
	got, err := Decode(&frame, sig)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != -1.5 {
		t.Errorf("Decode = %v, want -1.5", got)
	}
}

// TestRoundTripAllSignals sweeps every in-range raw value of every signal in
// the matrix through encode and back.
func TestRoundTripAllSignals(t *testing.T) {
	for _, msg := range matrix.VM2().Messages() {
		for _, sig := range msg.Signals {
			maxRaw := uint64(1)<<sig.BitLength - 1
			for raw := uint64(0); raw <= maxRaw; raw++ {
				value := float64(raw)*sig.Scale + sig.Offset
				if value < sig.Min || value > sig.Max+1e-9 {
					continue
				}
				frame := msg.NewFrame()
				if err := Encode(&frame, sig, value); err != nil {
					t.Fatalf("%s: Encode(%v): %v", sig.Name, value, err)
				}
				back, err := DecodeRaw(&frame, sig)
				if err != nil {
					t.Fatalf("%s: DecodeRaw: %v", sig.Name, err)
				}
				if back != raw {
					t.Fatalf("%s: wrote raw %d, read %d", sig.Name, raw, back)
				}
			}
		}
	}
}
