// Package mcaplog streams decoded CAN signals into an MCAP container.
package mcaplog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/foxglove/mcap/go/mcap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vm2tools/canmatrix/pkg/codec"
	"github.com/vm2tools/canmatrix/pkg/matrix"
)

// Writer writes decoded signals as MCAP messages.
//
// Layout:
//   - One protobuf schema, google.protobuf.Struct, shared by all channels, so
//     readers (Foxglove included) need no custom descriptors.
//   - Channel granularity = (CAN message, signal), topic /can/<Message>/<Signal>.
//   - Channel metadata carries can_id (hex), message, signal and unit.
//
// Channels are created lazily on first occurrence of a signal.
type Writer struct {
	mu         sync.Mutex
	writer     *mcap.Writer
	schemaID   uint16
	nextChanID uint16
	channels   map[string]uint16
}

// NewWriter initializes an MCAP writer on out with the Struct schema
// registered. The underlying file is not closed by Close.
func NewWriter(out io.Writer) (*Writer, error) {
	w, err := mcap.NewWriter(out, &mcap.WriterOptions{
		Chunked:     true,
		ChunkSize:   2 * 1024 * 1024,
		Compression: mcap.CompressionZSTD,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create MCAP writer")
	}

	if err := w.WriteHeader(&mcap.Header{Library: "canmatrix"}); err != nil {
		return nil, errors.Wrap(err, "write header")
	}

	fd := protodesc.ToFileDescriptorProto(structpb.File_google_protobuf_struct_proto)
	schemaBytes, err := proto.Marshal(fd)
	if err != nil {
		return nil, errors.Wrap(err, "marshal schema descriptor")
	}

	schemaID := uint16(1)
	if err := w.WriteSchema(&mcap.Schema{
		ID:       schemaID,
		Name:     "google.protobuf.Struct",
		Encoding: "protobuf",
		Data:     schemaBytes,
	}); err != nil {
		return nil, errors.Wrap(err, "write schema")
	}

	return &Writer{
		writer:     w,
		schemaID:   schemaID,
		channels:   make(map[string]uint16),
		nextChanID: 1,
	}, nil
}

// WriteDecodedMessage writes every signal of a decoded frame.
func (w *Writer) WriteDecodedMessage(dm *codec.DecodedMessage, ts time.Time) error {
	for _, sig := range dm.Message.Signals {
		sv, ok := dm.Signals[sig.Name]
		if !ok {
			continue
		}
		if err := w.WriteSignal(dm.Message, sv, ts); err != nil {
			return err
		}
	}
	return nil
}

// WriteSignal writes one decoded signal as a Struct payload.
func (w *Writer) WriteSignal(msg *matrix.Message, sv codec.SignalValue, ts time.Time) error {
	chID, err := w.ensureChannel(msg, sv)
	if err != nil {
		return err
	}

	fields := map[string]any{
		"can_id":   fmt.Sprintf("0x%X", msg.ID),
		"message":  msg.Name,
		"signal":   sv.Name,
		"raw":      float64(sv.Raw),
		"physical": sv.Physical,
		"in_range": sv.InRange,
	}
	if sv.Unit != "" {
		fields["unit"] = sv.Unit
	}
	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return errors.Wrapf(err, "build struct for %s", sv.Name)
	}
	data, err := proto.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", sv.Name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.writer.WriteMessage(&mcap.Message{
		ChannelID:   chID,
		LogTime:     uint64(ts.UnixNano()),
		PublishTime: uint64(ts.UnixNano()),
		Data:        data,
	}); err != nil {
		return errors.Wrapf(err, "write message for %s", sv.Name)
	}
	return nil
}

func (w *Writer) ensureChannel(msg *matrix.Message, sv codec.SignalValue) (uint16, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := fmt.Sprintf("0x%X:%s", msg.ID, sv.Name)
	if id, ok := w.channels[key]; ok {
		return id, nil
	}

	w.nextChanID++
	chID := w.nextChanID

	metadata := map[string]string{
		"can_id":  fmt.Sprintf("0x%X", msg.ID),
		"message": msg.Name,
		"signal":  sv.Name,
	}
	if sv.Unit != "" {
		metadata["unit"] = sv.Unit
	}
	if err := w.writer.WriteChannel(&mcap.Channel{
		ID:              chID,
		SchemaID:        w.schemaID,
		Topic:           fmt.Sprintf("/can/%s/%s", msg.Name, sv.Name),
		MessageEncoding: "protobuf",
		Metadata:        metadata,
	}); err != nil {
		return 0, errors.Wrapf(err, "write channel for %s", key)
	}

	w.channels[key] = chID
	return chID, nil
}

// Close finalizes the MCAP file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writer.Close()
}
