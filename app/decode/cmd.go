package decode

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	ecan "go.einride.tech/can"

	"github.com/vm2tools/canmatrix/pkg/cli"
	"github.com/vm2tools/canmatrix/pkg/codec"
	"github.com/vm2tools/canmatrix/pkg/matrix"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type decoder struct {
	id     string
	data   string
	asJSON bool
}

func NewCommand() *cobra.Command {
	s := &decoder{}

	cmd := &cobra.Command{
		Use:     "decode",
		Short:   "Decode one CAN frame against the VM2 matrix.",
		Example: `  canmatrix decode --id 0x320 --data 0011980000000000`,
		RunE:    cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.id, "id", s.id, "CAN identifier (decimal or 0x-prefixed hex)")
	cmd.Flags().StringVar(&s.data, "data", s.data, "payload as hex, up to 8 bytes, zero padded")
	cmd.Flags().BoolVar(&s.asJSON, "json", s.asJSON, "emit JSON instead of text")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("data")

	return cmd
}

type signalJSON struct {
	Name     string  `json:"name"`
	Raw      uint64  `json:"raw"`
	Physical float64 `json:"physical"`
	Unit     string  `json:"unit,omitempty"`
	InRange  bool    `json:"in_range"`
}

type frameJSON struct {
	CanID   string       `json:"can_id"`
	Message string       `json:"message"`
	Data    string       `json:"data"`
	Signals []signalJSON `json:"signals"`
}

func (s *decoder) run(_ context.Context, input cli.Input) error {
	frame, err := parseFrame(s.id, s.data)
	if err != nil {
		return err
	}

	decoded, err := codec.NewDecoder(matrix.VM2()).DecodeFrame(&frame)
	if err != nil {
		return errors.Wrap(err, "decode frame")
	}

	names := make([]string, 0, len(decoded.Signals))
	for name := range decoded.Signals {
		names = append(names, name)
	}
	sort.Strings(names)

	if s.asJSON {
		out := frameJSON{
			CanID:   fmt.Sprintf("0x%X", decoded.Message.ID),
			Message: decoded.Message.Name,
			Data:    hex.EncodeToString(frame.Data[:]),
		}
		for _, name := range names {
			sv := decoded.Signals[name]
			out.Signals = append(out.Signals, signalJSON{
				Name:     sv.Name,
				Raw:      sv.Raw,
				Physical: sv.Physical,
				Unit:     sv.Unit,
				InRange:  sv.InRange,
			})
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal decoded frame")
		}
		fmt.Println(string(b))
		return nil
	}

	input.Logger.Info("Decoded frame",
		"can_id", fmt.Sprintf("0x%03X", decoded.Message.ID),
		"message", decoded.Message.Name,
	)
	for _, name := range names {
		sv := decoded.Signals[name]
		line := fmt.Sprintf("%-40s raw=%-6d %v", sv.Name, sv.Raw, sv.Physical)
		if sv.Unit != "" {
			line += " " + sv.Unit
		}
		if !sv.InRange {
			line += "  (out of range)"
		}
		fmt.Println(line)
	}
	return nil
}

func parseFrame(idArg, dataArg string) (ecan.Frame, error) {
	id, err := parseID(idArg)
	if err != nil {
		return ecan.Frame{}, err
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(dataArg, "0x"))
	if err != nil {
		return ecan.Frame{}, errors.Wrapf(err, "invalid payload hex %q", dataArg)
	}
	if len(raw) > 8 {
		return ecan.Frame{}, errors.Newf("payload too long: %d bytes", len(raw))
	}
	frame := ecan.Frame{ID: id, Length: 8}
	copy(frame.Data[:], raw)
	return frame, nil
}

func parseID(arg string) (uint32, error) {
	ss := strings.TrimSpace(arg)
	base := 10
	if strings.HasPrefix(ss, "0x") || strings.HasPrefix(ss, "0X") {
		base = 16
		ss = ss[2:]
	}
	id, err := strconv.ParseUint(ss, base, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid CAN id %q", arg)
	}
	return uint32(id), nil
}
