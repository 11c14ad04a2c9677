package flate

// Length and distance code tables, RFC 1951 §3.2.5. Each entry gives the
// smallest value that code covers and how many extra bits (read/written
// LSB-first) encode the offset within that code's range.

var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1,
	2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4, 4, 4,
	5, 5, 5, 5,
	0,
}

var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 13, 15, 17,
	19, 23, 27, 31,
	35, 43, 51, 59,
	67, 83, 99, 115,
	131, 163, 195, 227,
	258,
}

var distExtraBits = [30]uint{
	0, 0, 0, 0,
	1, 1,
	2, 2,
	3, 3,
	4, 4,
	5, 5,
	6, 6,
	7, 7,
	8, 8,
	9, 9,
	10, 10,
	11, 11,
	12, 12,
	13, 13,
}

var distBase = [30]int{
	1, 2, 3, 4,
	5, 7,
	9, 13,
	17, 25,
	33, 49,
	65, 97,
	129, 193,
	257, 385,
	513, 769,
	1025, 1537,
	2049, 3073,
	4097, 6145,
	8193, 12289,
	16385, 24577,
}

// lengthToCode maps a match length in [3,258] to its length code (257..285)
// and the extra bits needed to recover the exact length within that code's
// range.
func lengthToCode(length int) (code int, extraBits uint, extraValue uint16) {
	for i := 0; i < len(lengthBase); i++ {
		nextBase := 259 // one past the single value 258 handles
		if i+1 < len(lengthBase) {
			nextBase = lengthBase[i+1]
		}
		if length >= lengthBase[i] && length < nextBase {
			return 257 + i, lengthExtraBits[i], uint16(length - lengthBase[i])
		}
	}
	panic("flate: length out of range")
}

func decodeLength(code int, extra uint16) int {
	return lengthBase[code-257] + int(extra)
}

// distanceToCode maps a distance in [1,32768] to its distance code (0..29)
// and the extra bits needed to recover the exact distance.
func distanceToCode(distance int) (code int, extraBits uint, extraValue uint16) {
	for i := 0; i < len(distBase); i++ {
		nextBase := 32769
		if i+1 < len(distBase) {
			nextBase = distBase[i+1]
		}
		if distance >= distBase[i] && distance < nextBase {
			return i, distExtraBits[i], uint16(distance - distBase[i])
		}
	}
	panic("flate: distance out of range")
}

func decodeDistance(code int, extra uint16) int {
	return distBase[code] + int(extra)
}

// codeLengthOrder is the order in which code-length-code lengths are stored
// in a dynamic block header, RFC 1951 §3.2.7.
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}
