package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vm2tools/canmatrix/pkg/capture"
	"github.com/vm2tools/canmatrix/pkg/cli"
	"github.com/vm2tools/canmatrix/pkg/codec"
	"github.com/vm2tools/canmatrix/pkg/matrix"
	"github.com/vm2tools/canmatrix/pkg/mcaplog"
)

type converter struct {
	pcapngFile string
	mcapFile   string
}

func NewCommand() *cobra.Command {
	s := &converter{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a pcapng CAN capture to MCAP using the VM2 matrix.",
		Long: `Convert a pcapng capture of a SocketCAN interface to MCAP.

Frames matching the FOTON VM2 matrix are decoded signal by signal and written
as one MCAP channel per signal; unknown identifiers are skipped.`,
		Example: `  canmatrix convert --pcapng-file capture.pcapng --mcap-file out.mcap`,
		RunE:    cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.pcapngFile, "pcapng-file", s.pcapngFile, "PCAPNG file")
	cmd.Flags().StringVar(&s.mcapFile, "mcap-file", s.mcapFile, "MCAP output file")

	cmd.MarkFlagRequired("pcapng-file")
	cmd.MarkFlagRequired("mcap-file")

	return cmd
}

func (s *converter) run(ctx context.Context, input cli.Input) error {
	input.Logger.Info("Starting pcapng to MCAP conversion",
		"pcapng_file", s.pcapngFile,
		"mcap_file", s.mcapFile,
	)

	capFile, err := os.Open(s.pcapngFile)
	if err != nil {
		return fmt.Errorf("failed to open pcapng file: %w", err)
	}
	defer capFile.Close()

	reader, err := capture.NewReader(capFile)
	if err != nil {
		return fmt.Errorf("failed to create capture reader: %w", err)
	}

	mcapOut, err := os.Create(s.mcapFile)
	if err != nil {
		return fmt.Errorf("failed to create MCAP file: %w", err)
	}
	defer mcapOut.Close()

	writer, err := mcaplog.NewWriter(mcapOut)
	if err != nil {
		return fmt.Errorf("failed to create MCAP writer: %w", err)
	}
	defer writer.Close()

	decoder := codec.NewDecoder(matrix.VM2())

	var (
		frameCount      int
		messageCount    int
		skippedCount    int
		outOfRangeCount int
		startTime       = time.Now()
		msgCounts       = make(map[uint32]int)
	)

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("conversion cancelled: %w", ctx.Err())
		default:
		}

		rec, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read frame: %w", err)
		}
		frameCount++

		decoded, err := decoder.DecodeFrame(&rec.Frame)
		if err != nil {
			// Frames outside the matrix are expected on a shared bus.
			skippedCount++
			continue
		}

		for _, sv := range decoded.Signals {
			if !sv.InRange {
				outOfRangeCount++
				input.Logger.Debug("signal_out_of_range",
					"can_id", fmt.Sprintf("0x%03X", decoded.Message.ID),
					"message", decoded.Message.Name,
					"signal", sv.Name,
					"value", sv.Physical,
				)
			}
		}

		if err := writer.WriteDecodedMessage(decoded, rec.Timestamp); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
		messageCount++
		msgCounts[decoded.Message.ID]++

		if frameCount%10000 == 0 {
			input.Logger.Info(fmt.Sprintf("Progress: %d frames processed, %d messages decoded, %d skipped",
				frameCount, messageCount, skippedCount))
		}
	}

	input.Logger.Info("Conversion finished",
		"frames", frameCount,
		"messages", messageCount,
		"skipped", skippedCount,
		"out_of_range", outOfRangeCount,
		"duration", time.Since(startTime).String(),
	)
	for id, n := range msgCounts {
		input.Logger.Info("message_count", "can_id", fmt.Sprintf("0x%03X", id), "frames", n)
	}

	return nil
}
