package zip

import (
	"bytes"
	"encoding/binary"
)

// Entry is the single file this package's Reader ever produces.
type Entry struct {
	Name             string
	Method           uint16
	Payload          []byte
	UncompressedSize int
}

// ReadFile parses a single-entry ZIP archive held entirely in data. It
// scans backward for the end-of-central-directory signature (the way a
// reader must, since the EOCD record's own offset is the only reliable
// starting point in a ZIP archive), follows it to the one central
// directory entry, confirms a matching local file header at the offset
// the entry names, and returns the raw payload bytes between the end of
// that local header and the start of the central directory.
func ReadFile(data []byte) (*Entry, error) {
	eocdPos, err := findEOCD(data)
	if err != nil {
		return nil, err
	}
	if eocdPos+22 > len(data) {
		return nil, ErrHeader
	}
	eocd := data[eocdPos : eocdPos+22]
	cdSize := int(binary.LittleEndian.Uint32(eocd[12:16]))
	cdOffset := int(binary.LittleEndian.Uint32(eocd[16:20]))

	if cdOffset < 0 || cdOffset+46 > len(data) {
		return nil, ErrHeader
	}
	cd := data[cdOffset:]
	if !bytes.HasPrefix(cd, centralDirSignature[:]) {
		return nil, ErrHeader
	}
	if len(cd) < 46 {
		return nil, ErrHeader
	}
	method := binary.LittleEndian.Uint16(cd[10:12])
	compressedSize := int(binary.LittleEndian.Uint32(cd[20:24]))
	uncompressedSize := int(binary.LittleEndian.Uint32(cd[24:28]))
	nameLen := int(binary.LittleEndian.Uint16(cd[28:30]))
	extraLen := int(binary.LittleEndian.Uint16(cd[30:32]))
	localHeaderOffset := int(binary.LittleEndian.Uint32(cd[42:46]))

	if cdOffset+46+nameLen+extraLen > len(data) {
		return nil, ErrHeader
	}
	name := string(cd[46 : 46+nameLen])

	if method != Stored && method != Deflated {
		return nil, ErrMethod
	}

	if localHeaderOffset < 0 || localHeaderOffset+30 > len(data) {
		return nil, ErrHeader
	}
	local := data[localHeaderOffset:]
	if !bytes.HasPrefix(local, localHeaderSignature[:]) {
		return nil, ErrHeader
	}
	localNameLen := int(binary.LittleEndian.Uint16(local[26:28]))
	localExtraLen := int(binary.LittleEndian.Uint16(local[28:30]))

	payloadStart := localHeaderOffset + 30 + localNameLen + localExtraLen
	payloadEnd := payloadStart + compressedSize
	if payloadStart < 0 || payloadEnd > len(data) || payloadEnd > cdOffset {
		return nil, ErrHeader
	}

	_ = cdSize // read from the EOCD record but not checked
	return &Entry{
		Name:             name,
		Method:           method,
		Payload:          data[payloadStart:payloadEnd],
		UncompressedSize: uncompressedSize,
	}, nil
}

// findEOCD scans backward from the end of data for the end-of-central-
// directory signature. The EOCD record is 22 bytes plus up to 65535 bytes
// of trailing comment, so the search window is bounded the same way real
// ZIP readers bound it.
func findEOCD(data []byte) (int, error) {
	const maxComment = 65535
	const eocdFixedSize = 22

	searchStart := len(data) - eocdFixedSize - maxComment
	if searchStart < 0 {
		searchStart = 0
	}
	for i := len(data) - eocdFixedSize; i >= searchStart; i-- {
		if bytes.Equal(data[i:i+4], eocdSignature[:]) {
			return i, nil
		}
	}
	return 0, ErrEOCDNotFound
}
