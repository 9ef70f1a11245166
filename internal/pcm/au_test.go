package pcm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auFile(encoding, rate, channels uint32, body []byte) []byte {
	h := make([]byte, auHeaderSize)
	be := binary.BigEndian
	be.PutUint32(h[0:], auMagic)
	be.PutUint32(h[4:], auHeaderSize)
	be.PutUint32(h[8:], uint32(len(body)))
	be.PutUint32(h[12:], encoding)
	be.PutUint32(h[16:], rate)
	be.PutUint32(h[20:], channels)
	return append(h, body...)
}

func frame(out []byte, i int) (int16, int16) {
	return int16(binary.LittleEndian.Uint16(out[i*4:])), int16(binary.LittleEndian.Uint16(out[i*4+2:]))
}

func TestULawToLinear(t *testing.T) {
	assert.Equal(t, int16(-32124), ulawToLinear(0x00))
	assert.Equal(t, int16(0), ulawToLinear(0x7f))
	assert.Equal(t, int16(32124), ulawToLinear(0x80))
	assert.Equal(t, int16(0), ulawToLinear(0xff))
}

func TestDecodeAUULawMono(t *testing.T) {
	out, rate, err := DecodeAU(auFile(auEncodingULaw, 8000, 1, []byte{0x00, 0x80, 0xff}))
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)
	require.Len(t, out, 3*4)

	l, r := frame(out, 0)
	assert.Equal(t, int16(-32124), l)
	assert.Equal(t, l, r, "mono is copied to both channels")
	l, _ = frame(out, 1)
	assert.Equal(t, int16(32124), l)
}

func TestDecodeAUPCM16Stereo(t *testing.T) {
	body := make([]byte, 8)
	be := binary.BigEndian
	be.PutUint16(body[0:], uint16(1000))
	be.PutUint16(body[2:], 0xfc18) // -1000
	be.PutUint16(body[4:], uint16(7))
	be.PutUint16(body[6:], uint16(8))

	out, rate, err := DecodeAU(auFile(auEncodingPCM16, 22050, 2, body))
	require.NoError(t, err)
	assert.Equal(t, 22050, rate)
	require.Len(t, out, 2*4)

	l, r := frame(out, 0)
	assert.Equal(t, int16(1000), l)
	assert.Equal(t, int16(-1000), r)
	l, r = frame(out, 1)
	assert.Equal(t, int16(7), l)
	assert.Equal(t, int16(8), r)
}

func TestDecodeAUHonorsDataSize(t *testing.T) {
	data := auFile(auEncodingULaw, 8000, 1, []byte{0x80, 0x80})
	binary.BigEndian.PutUint32(data[8:], 1)
	data = append(data, 0x00) // 尾部垃圾

	out, _, err := DecodeAU(data)
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestDecodeAUErrors(t *testing.T) {
	badMagic := auFile(auEncodingULaw, 8000, 1, []byte{0})
	badMagic[0] = 'X'
	badOffset := auFile(auEncodingULaw, 8000, 1, []byte{0})
	binary.BigEndian.PutUint32(badOffset[4:], 4)

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0x2e, 0x73}},
		{"bad magic", badMagic},
		{"bad offset", badOffset},
		{"unsupported encoding", auFile(27, 8000, 1, []byte{0})},
		{"too many channels", auFile(auEncodingULaw, 8000, 6, []byte{0})},
		{"zero rate", auFile(auEncodingULaw, 0, 1, []byte{0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeAU(tt.data)
			assert.Error(t, err)
		})
	}
	_, _, err := DecodeAU(badMagic)
	assert.ErrorIs(t, err, ErrNotAU)
}
