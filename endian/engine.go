// Package endian provides the byte order used for catalog encoding and decoding.
//
// The catalog is consumed by big-endian firmware, so every record in this module
// is written through GetBigEndianEngine(). The EndianEngine interface combines
// binary.ByteOrder and binary.AppendByteOrder so the same value can be used to
// patch fields in place and to append them to a growing buffer.
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, recordLen)
//	engine.PutUint32(hdr[0:4], magic)
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the byte order of the catalog.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0100)

	return b[0] == 0x01
}
