package zip

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteReadRoundTripDeflated(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	if err := WriteFile(&buf, "hello.deflate", Deflated, payload, 10); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entry, err := ReadFile(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if entry.Name != "hello.deflate" {
		t.Errorf("Name = %q, want %q", entry.Name, "hello.deflate")
	}
	if entry.Method != Deflated {
		t.Errorf("Method = %d, want %d", entry.Method, Deflated)
	}
	if !bytes.Equal(entry.Payload, payload) {
		t.Errorf("Payload = %v, want %v", entry.Payload, payload)
	}
	if entry.UncompressedSize != 10 {
		t.Errorf("UncompressedSize = %d, want 10", entry.UncompressedSize)
	}
}

func TestWriteReadRoundTripStored(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte("stored as-is")
	if err := WriteFile(&buf, "raw.bin", Stored, payload, len(payload)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entry, err := ReadFile(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if entry.Method != Stored {
		t.Errorf("Method = %d, want %d", entry.Method, Stored)
	}
	if !bytes.Equal(entry.Payload, payload) {
		t.Errorf("Payload = %q, want %q", entry.Payload, payload)
	}
}

func TestReadFileRejectsMissingEOCD(t *testing.T) {
	if _, err := ReadFile([]byte("not a zip file")); err != ErrEOCDNotFound {
		t.Fatalf("got %v, want ErrEOCDNotFound", err)
	}
}

func TestReadFileRejectsBadLocalHeaderSignature(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFile(&buf, "x", Stored, []byte("y"), 1); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	corrupted := buf.Bytes()
	corrupted[0] = 0x00 // clobber the local header signature
	if _, err := ReadFile(corrupted); err != ErrHeader {
		t.Fatalf("got %v, want ErrHeader", err)
	}
}

func TestArchiveLayoutOffsetsMatchEOCD(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0xAA, 0xBB}
	if err := WriteFile(&buf, "n", Deflated, payload, 5); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data := buf.Bytes()

	eocdPos, err := findEOCD(data)
	if err != nil {
		t.Fatalf("findEOCD: %v", err)
	}
	if !bytes.HasPrefix(data[eocdPos:], eocdSignature[:]) {
		t.Fatalf("findEOCD did not land on the EOCD signature")
	}

	// Local header (30 bytes + 1-byte name) and payload precede the
	// central directory, which is 46 bytes + 1-byte name long.
	cdSize := int(binary.LittleEndian.Uint32(data[eocdPos+12 : eocdPos+16]))
	cdOffset := int(binary.LittleEndian.Uint32(data[eocdPos+16 : eocdPos+20]))
	if want := 30 + 1 + len(payload); cdOffset != want {
		t.Fatalf("EOCD central directory offset = %d, want %d", cdOffset, want)
	}
	if want := 46 + 1; cdSize != want {
		t.Fatalf("EOCD central directory size = %d, want %d", cdSize, want)
	}
	if !bytes.HasPrefix(data[cdOffset:], centralDirSignature[:]) {
		t.Fatalf("EOCD offset %d does not point at the central directory signature", cdOffset)
	}
	if cdOffset+cdSize != eocdPos {
		t.Fatalf("central directory ends at %d, EOCD starts at %d", cdOffset+cdSize, eocdPos)
	}
}
