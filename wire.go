package poseviz

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/x448/float16"
)

// Wire format for streaming frames to browser hosts: a 4 byte magic
// "PVF1", one mode byte, little endian uint16 line and dot counts, then
// the commands.  Coordinates, widths, radii and alphas travel as IEEE
// half floats, colors as 4 RGBA bytes, glow as one byte.  The counts
// limit a frame to 65535 commands of each kind; EncodeFrame drops the
// excess.  A full figure frame is under 600 bytes.

var (
	// ErrBadMagic reports a payload that is not a wire encoded frame.
	ErrBadMagic = errors.New("poseviz: bad frame magic")
	// ErrTruncated reports a payload shorter than its counts declare.
	ErrTruncated = errors.New("poseviz: truncated frame")
)

var wireMagic = [4]byte{'P', 'V', 'F', '1'}

const (
	wireHeaderSize  = 9
	wireLineSize    = 17
	wireDotSize     = 13
	wireMaxCommands = 65535
)

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// EncodeFrame serializes a frame into the wire format, dropping any
// commands beyond the 65535 the counts can declare.
func EncodeFrame(f Frame) []byte {
	lines := f.Lines

	if len(lines) > wireMaxCommands {
		lines = lines[:wireMaxCommands]
	}

	dots := f.Dots

	if len(dots) > wireMaxCommands {
		dots = dots[:wireMaxCommands]
	}

	buf := make([]byte, 0,
		wireHeaderSize+wireLineSize*len(lines)+wireDotSize*len(dots))

	buf = append(buf, wireMagic[:]...)

	modeByte := byte(0)

	if f.Mode == ModeDemo {
		modeByte = 1
	}

	buf = append(buf, modeByte)
	buf = appendUint16(buf, uint16(len(lines)))
	buf = appendUint16(buf, uint16(len(dots)))

	for _, l := range lines {
		buf = appendF16(buf, l.X1)
		buf = appendF16(buf, l.Y1)
		buf = appendF16(buf, l.X2)
		buf = appendF16(buf, l.Y2)
		buf = appendF16(buf, l.Width)
		buf = appendF16(buf, l.Alpha)
		buf = append(buf, l.Color.R, l.Color.G, l.Color.B, l.Color.A)
		buf = appendBool(buf, l.Glow)
	}

	for _, d := range dots {
		buf = appendF16(buf, d.X)
		buf = appendF16(buf, d.Y)
		buf = appendF16(buf, d.Radius)
		buf = appendF16(buf, d.Alpha)
		buf = append(buf, d.Color.R, d.Color.G, d.Color.B, d.Color.A)
		buf = appendBool(buf, d.Glow)
	}

	return buf
}

// DecodeFrame parses a wire format payload back into a frame.
func DecodeFrame(data []byte) (Frame, error) {
	if len(data) < wireHeaderSize {
		return Frame{}, fmt.Errorf("header is %d bytes: %w", len(data), ErrTruncated)
	}

	if data[0] != wireMagic[0] || data[1] != wireMagic[1] ||
		data[2] != wireMagic[2] || data[3] != wireMagic[3] {
		return Frame{}, ErrBadMagic
	}

	mode := ModeAnalysis

	if data[4] == 1 {
		mode = ModeDemo
	}

	lineCount := int(readUint16(data[5:]))
	dotCount := int(readUint16(data[7:]))

	want := wireHeaderSize + wireLineSize*lineCount + wireDotSize*dotCount

	if len(data) < want {
		return Frame{}, fmt.Errorf("payload is %d bytes, counts declare %d: %w",
			len(data), want, ErrTruncated)
	}

	f := Frame{
		Mode:  mode,
		Lines: make([]Line, lineCount),
		Dots:  make([]Dot, dotCount),
	}

	off := wireHeaderSize

	for i := 0; i < lineCount; i++ {
		f.Lines[i] = Line{
			X1:    readF16(data[off:]),
			Y1:    readF16(data[off+2:]),
			X2:    readF16(data[off+4:]),
			Y2:    readF16(data[off+6:]),
			Width: readF16(data[off+8:]),
			Alpha: readF16(data[off+10:]),
			Color: rgba(data[off+12:]),
			Glow:  data[off+16] == 1,
		}
		off += wireLineSize
	}

	for i := 0; i < dotCount; i++ {
		f.Dots[i] = Dot{
			X:      readF16(data[off:]),
			Y:      readF16(data[off+2:]),
			Radius: readF16(data[off+4:]),
			Alpha:  readF16(data[off+6:]),
			Color:  rgba(data[off+8:]),
			Glow:   data[off+12] == 1,
		}
		off += wireDotSize
	}

	return f, nil
}

// appendF16 appends v as a little endian half float
func appendF16(dst []byte, v float64) []byte {
	bits := float16.Fromfloat32(float32(v)).Bits()
	return append(dst, byte(bits), byte(bits>>8))
}

// readF16 reads a little endian half float through the lookup table
func readF16(data []byte) float64 {
	return float64(f16LookupTable[uint16(data[0])|uint16(data[1])<<8])
}

func appendUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

func readUint16(data []byte) uint16 {
	return uint16(data[0]) | uint16(data[1])<<8
}

func appendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}

	return append(dst, 0)
}

func rgba(data []byte) color.RGBA {
	return color.RGBA{R: data[0], G: data[1], B: data[2], A: data[3]}
}
