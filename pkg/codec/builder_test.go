package codec

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/vm2tools/canmatrix/pkg/matrix"
)

func TestFrameBuilderPacksMessage(t *testing.T) {
	msg := mustMessage(t, "AC_1")

	frame, err := BeginMessage(msg).
		Set("AC1_St_Blower", 3).
		Set("AC1_S_AC", 1).
		Set("AC1_St_FlowMode", 5).
		Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if frame.ID != 0x36C {
		t.Errorf("frame.ID = 0x%X, want 0x36C", frame.ID)
	}
	if frame.Length != 8 {
		t.Errorf("frame.Length = %d, want 8", frame.Length)
	}
	for name, want := range map[string]float64{
		"AC1_St_Blower":   3,
		"AC1_S_AC":        1,
		"AC1_St_FlowMode": 5,
	} {
		sig, _ := msg.Signal(name)
		got, err := Decode(&frame, sig)
		if err != nil {
			t.Fatalf("Decode %s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestFrameBuilderUnknownSignal(t *testing.T) {
	msg := mustMessage(t, "AC_1")
	_, err := BeginMessage(msg).Set("EMS3_N_EngineSpeed", 800).Finish()
	if !errors.Is(err, ErrUnknownSignal) {
		t.Errorf("Finish = %v, want ErrUnknownSignal", err)
	}
}

func TestFrameBuilderErrorSticks(t *testing.T) {
	msg := mustMessage(t, "AC_1")
	_, err := BeginMessage(msg).
		Set("AC1_St_Blower", 99). // above max 15
		Set("AC1_S_AC", 1).
		Finish()
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Finish = %v, want ErrOutOfRange", err)
	}
}

func TestFrameBuilderSetRaw(t *testing.T) {
	msg := mustMessage(t, "EMS_3")
	frame, err := BeginMessage(msg).SetRaw("EMS3_N_EngineSpeed", 0x2710).Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	sig, _ := msg.Signal("EMS3_N_EngineSpeed")
	got, err := Decode(&frame, sig)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != 2500 { // 10000 * 0.25
		t.Errorf("EMS3_N_EngineSpeed = %v, want 2500", got)
	}
}

// highestInRange returns the largest encodable physical value of a signal.
func highestInRange(sig *matrix.Signal) float64 {
	maxRaw := float64(uint64(1)<<sig.BitLength - 1)
	raw := math.Min(maxRaw, math.Round((sig.Max-sig.Offset)/sig.Scale))
	for raw >= 0 {
		value := raw*sig.Scale + sig.Offset
		if value <= sig.Max+1e-9 {
			return value
		}
		raw--
	}
	return sig.Min
}

// TestNonInterference encodes every ordered pair of signals sharing a
// message and checks the first write survives the second.
func TestNonInterference(t *testing.T) {
	for _, msg := range matrix.VM2().Messages() {
		for _, a := range msg.Signals {
			for _, b := range msg.Signals {
				if a == b {
					continue
				}
				frame := msg.NewFrame()
				wantA := highestInRange(a)
				if err := Encode(&frame, a, wantA); err != nil {
					t.Fatalf("%s: Encode: %v", a.Name, err)
				}
				if err := Encode(&frame, b, highestInRange(b)); err != nil {
					t.Fatalf("%s: Encode: %v", b.Name, err)
				}
				gotA, err := Decode(&frame, a)
				if err != nil {
					t.Fatalf("%s after %s: Decode: %v", a.Name, b.Name, err)
				}
				if math.Abs(gotA-wantA) > 1e-9 {
					t.Errorf("%s disturbed by %s: got %v, want %v", a.Name, b.Name, gotA, wantA)
				}
			}
		}
	}
}
