package encode

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vm2tools/canmatrix/pkg/cli"
	"github.com/vm2tools/canmatrix/pkg/codec"
	"github.com/vm2tools/canmatrix/pkg/matrix"
)

type encoder struct {
	message string
	sets    []string
}

func NewCommand() *cobra.Command {
	s := &encoder{}

	cmd := &cobra.Command{
		Use:     "encode",
		Short:   "Pack signal values into a CAN frame of the VM2 matrix.",
		Example: `  canmatrix encode --message AC_1 --set AC1_St_Blower=3 --set AC1_S_AC=1`,
		RunE:    cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.message, "message", s.message, "message name, e.g. EMS_3")
	cmd.Flags().StringArrayVar(&s.sets, "set", s.sets, "signal assignment Signal=Value (repeatable)")

	cmd.MarkFlagRequired("message")
	cmd.MarkFlagRequired("set")

	return cmd
}

func (s *encoder) run(_ context.Context, input cli.Input) error {
	msg, ok := matrix.VM2().MessageByName(s.message)
	if !ok {
		return errors.Newf("unknown message %q", s.message)
	}

	b := codec.BeginMessage(msg)
	for _, assignment := range s.sets {
		name, valueArg, ok := strings.Cut(assignment, "=")
		if !ok {
			return errors.Newf("malformed --set %q, want Signal=Value", assignment)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(valueArg), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value in --set %q", assignment)
		}
		b.Set(strings.TrimSpace(name), value)
	}
	frame, err := b.Finish()
	if err != nil {
		return errors.Wrap(err, "pack frame")
	}

	input.Logger.Info("Packed frame",
		"can_id", fmt.Sprintf("0x%03X", frame.ID),
		"message", msg.Name,
		"dlc", frame.Length,
	)
	fmt.Printf("%03X#%s\n", frame.ID, strings.ToUpper(hex.EncodeToString(frame.Data[:])))
	return nil
}
