package codec

import (
	ecan "go.einride.tech/can"
)

// ExtractBits reads a big-endian (Motorola) bit field out of a CAN payload.
// start is the position of the field's most significant bit, counted as
// byteIndex*8 + bitIndex with bitIndex 7 the MSB of a byte. Bits descend to
// bit 0 of the byte, then continue at bit 7 of the next higher-indexed byte.
// A span reaching past the payload stops early, contributing zero bits.
func ExtractBits(data *ecan.Data, start, length uint8) uint64 {
	if length == 0 || length > 64 {
		return 0
	}
	byteIdx := int(start) / 8
	bitIdx := int(start) % 8
	var raw uint64
	for i := uint8(0); i < length; i++ {
		if byteIdx >= len(data) {
			break
		}
		raw <<= 1
		raw |= uint64(data[byteIdx]>>bitIdx) & 1
		bitIdx--
		if bitIdx < 0 {
			bitIdx = 7
			byteIdx++
		}
	}
	return raw
}

// InsertBits writes the low length bits of value into the payload at the
// same big-endian positions ExtractBits reads from, clearing each target
// bit before setting it. Bits outside the written span are preserved.
func InsertBits(data *ecan.Data, start, length uint8, value uint64) {
	if length == 0 || length > 64 {
		return
	}
	byteIdx := int(start) / 8
	bitIdx := int(start) % 8
	for i := uint8(0); i < length; i++ {
		if byteIdx >= len(data) {
			return
		}
		mask := byte(1) << bitIdx
		if (value>>(length-1-i))&1 == 1 {
			data[byteIdx] |= mask
		} else {
			data[byteIdx] &^= mask
		}
		bitIdx--
		if bitIdx < 0 {
			bitIdx = 7
			byteIdx++
		}
	}
}
