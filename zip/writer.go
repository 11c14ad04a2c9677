package zip

import (
	"encoding/binary"
	"io"
)

// Compression methods recorded in ZIP headers.
const (
	Stored   = 0
	Deflated = 8
)

var (
	localHeaderSignature = [4]byte{0x50, 0x4B, 0x03, 0x04}
	centralDirSignature  = [4]byte{0x50, 0x4B, 0x01, 0x02}
	eocdSignature        = [4]byte{0x50, 0x4B, 0x05, 0x06}
)

// dummyDOSTime/dummyDOSDate stand in for a real timestamp; this writer
// never round-trips modification times.
const (
	dummyDOSTime = 0
	dummyDOSDate = 0x21 // 1980-01-01, the DOS epoch
)

// placeholderCRC marks that this writer does not compute CRC-32 (spec
// non-goal); real ZIP tools will flag the archive, but this package's own
// Reader does not check it.
const placeholderCRC = 0xDEADBEEF

// WriteFile writes a single-entry ZIP archive to w: name holds payload
// under the given method (Stored or Deflated). uncompressedSize must be the
// length of the original, pre-compression bytes; for Stored it equals
// len(payload).
func WriteFile(w io.Writer, name string, method uint16, payload []byte, uncompressedSize int) error {
	nameBytes := []byte(name)
	localHeaderOffset := 0

	local := encodeLocalHeader(nameBytes, method, len(payload), uncompressedSize)
	if _, err := w.Write(local); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	central := encodeCentralDirHeader(nameBytes, method, len(payload), uncompressedSize, localHeaderOffset)
	if _, err := w.Write(central); err != nil {
		return err
	}

	eocd := encodeEOCD(len(central), len(local)+len(payload))
	_, err := w.Write(eocd)
	return err
}

func encodeLocalHeader(name []byte, method uint16, compressedSize, uncompressedSize int) []byte {
	buf := make([]byte, 30+len(name))
	copy(buf[0:4], localHeaderSignature[:])
	binary.LittleEndian.PutUint16(buf[4:6], 20) // version needed
	binary.LittleEndian.PutUint16(buf[6:8], 0)  // flags
	binary.LittleEndian.PutUint16(buf[8:10], method)
	binary.LittleEndian.PutUint16(buf[10:12], dummyDOSTime)
	binary.LittleEndian.PutUint16(buf[12:14], dummyDOSDate)
	binary.LittleEndian.PutUint32(buf[14:18], placeholderCRC)
	binary.LittleEndian.PutUint32(buf[18:22], uint32(compressedSize))
	binary.LittleEndian.PutUint32(buf[22:26], uint32(uncompressedSize))
	binary.LittleEndian.PutUint16(buf[26:28], uint16(len(name)))
	binary.LittleEndian.PutUint16(buf[28:30], 0) // extra field length
	copy(buf[30:], name)
	return buf
}

func encodeCentralDirHeader(name []byte, method uint16, compressedSize, uncompressedSize, localHeaderOffset int) []byte {
	buf := make([]byte, 46+len(name))
	copy(buf[0:4], centralDirSignature[:])
	binary.LittleEndian.PutUint16(buf[4:6], 20)  // version made by
	binary.LittleEndian.PutUint16(buf[6:8], 20)  // version needed
	binary.LittleEndian.PutUint16(buf[8:10], 0)  // flags
	binary.LittleEndian.PutUint16(buf[10:12], method)
	binary.LittleEndian.PutUint16(buf[12:14], dummyDOSTime)
	binary.LittleEndian.PutUint16(buf[14:16], dummyDOSDate)
	binary.LittleEndian.PutUint32(buf[16:20], placeholderCRC)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(compressedSize))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(uncompressedSize))
	binary.LittleEndian.PutUint16(buf[28:30], uint16(len(name)))
	binary.LittleEndian.PutUint16(buf[30:32], 0) // extra field length
	binary.LittleEndian.PutUint16(buf[32:34], 0) // comment length
	binary.LittleEndian.PutUint16(buf[34:36], 0) // disk number start
	binary.LittleEndian.PutUint16(buf[36:38], 0) // internal attributes
	binary.LittleEndian.PutUint32(buf[38:42], 0) // external attributes
	binary.LittleEndian.PutUint32(buf[42:46], uint32(localHeaderOffset))
	copy(buf[46:], name)
	return buf
}

func encodeEOCD(centralDirSize, centralDirOffset int) []byte {
	buf := make([]byte, 22)
	copy(buf[0:4], eocdSignature[:])
	binary.LittleEndian.PutUint16(buf[4:6], 0) // disk number
	binary.LittleEndian.PutUint16(buf[6:8], 0) // disk with CD start
	binary.LittleEndian.PutUint16(buf[8:10], 1)
	binary.LittleEndian.PutUint16(buf[10:12], 1)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(centralDirSize))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(centralDirOffset))
	binary.LittleEndian.PutUint16(buf[20:22], 0) // comment length
	return buf
}
