// Package capture reads CAN frames out of pcapng captures of a SocketCAN
// interface, the format candump/tcpdump produce on Linux.
package capture

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	ecan "go.einride.tech/can"
)

// linkTypeCAN is LINKTYPE_CAN_SOCKETCAN, not named in gopacket's layers.
// ref: https://www.tcpdump.org/linktypes.html
const linkTypeCAN layers.LinkType = 227

// SocketCAN id word flags and masks.
const (
	idFlagExtended = 0x80000000
	idFlagRemote   = 0x40000000
	idFlagError    = 0x20000000
	idMaskExtended = 0x1fffffff
	idMaskStandard = 0x7ff
)

// Record is one captured CAN frame with its capture timestamp.
type Record struct {
	Frame     ecan.Frame
	Timestamp time.Time
}

// Reader iterates CAN frames in a pcapng stream, skipping packets that are
// not well-formed CAN frames (including bus error frames).
type Reader struct {
	reader   *pcapgo.NgReader
	linkType layers.LinkType
	packets  uint64
}

func NewReader(r io.Reader) (*Reader, error) {
	ng, err := pcapgo.NewNgReader(r, pcapgo.DefaultNgReaderOptions)
	if err != nil {
		return nil, errors.Wrap(err, "open pcapng stream")
	}
	return &Reader{reader: ng, linkType: ng.LinkType()}, nil
}

// Next returns the next CAN frame, or io.EOF at the end of the capture.
func (r *Reader) Next() (Record, error) {
	for {
		data, ci, err := r.reader.ReadPacketData()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, io.EOF
			}
			return Record{}, errors.Wrap(err, "read packet data")
		}
		r.packets++

		payload, err := r.canPayload(data)
		if err != nil {
			continue
		}
		rec, isError, err := decodeSocketCAN(payload, ci)
		if err != nil || isError {
			continue
		}
		return rec, nil
	}
}

// PacketCount returns the number of packets consumed so far, CAN or not.
func (r *Reader) PacketCount() uint64 {
	return r.packets
}

// canPayload strips the link-layer framing down to the raw SocketCAN bytes.
func (r *Reader) canPayload(data []byte) ([]byte, error) {
	switch r.linkType {
	case layers.LinkTypeLinuxSLL:
		packet := gopacket.NewPacket(data, r.linkType, gopacket.Default)
		if sll, ok := packet.Layer(layers.LayerTypeLinuxSLL).(*layers.LinuxSLL); ok {
			return sll.Payload, nil
		}
		return packet.Data(), nil
	case linkTypeCAN:
		return data, nil
	default:
		return nil, errors.Newf("unsupported link type: %v", r.linkType)
	}
}

// decodeSocketCAN parses the 16-byte SocketCAN wire format: a little-endian
// id word carrying the flag bits, a DLC byte, padding, then up to 8 data
// bytes.
func decodeSocketCAN(data []byte, ci gopacket.CaptureInfo) (Record, bool, error) {
	if len(data) < 8 {
		return Record{}, false, errors.Newf("short CAN frame: %d bytes", len(data))
	}

	idWord := binary.LittleEndian.Uint32(data[0:4])
	isExtended := idWord&idFlagExtended != 0
	isRemote := idWord&idFlagRemote != 0
	isError := idWord&idFlagError != 0

	id := idWord & idMaskStandard
	if isExtended {
		id = idWord & idMaskExtended
	}

	length := data[4]
	if length > 8 {
		length = 8
	}
	var payload ecan.Data
	if len(data) >= 8+int(length) {
		copy(payload[:], data[8:8+length])
	}

	return Record{
		Frame: ecan.Frame{
			ID:         id,
			Length:     length,
			Data:       payload,
			IsExtended: isExtended,
			IsRemote:   isRemote,
		},
		Timestamp: ci.Timestamp,
	}, isError, nil
}
