// Package pcm 把简单的音频格式转换成 Ebitengine 播放所需的
// 16 位小端立体声 PCM。
package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sun/NeXT .au 文件头（大端，至少 24 字节）
const (
	auMagic      = 0x2e736e64 // ".snd"
	auHeaderSize = 24
	auSizeAbsent = 0xffffffff

	auEncodingULaw  = 1 // 8 位 μ-law
	auEncodingPCM16 = 3 // 16 位线性 PCM
)

// ErrNotAU 文件头不是 .au 格式
var ErrNotAU = errors.New("not a Sun/NeXT audio file")

// DecodeAU 解码 .au 数据
//
// 支持 μ-law 和 16 位线性 PCM，单声道或立体声。
// 返回 16 位小端立体声 PCM（单声道复制到两个声道）以及原始采样率，
// 采样率与音频上下文不一致时由调用方重采样。
func DecodeAU(data []byte) ([]byte, int, error) {
	if len(data) < auHeaderSize {
		return nil, 0, fmt.Errorf("au: file too short (%d bytes)", len(data))
	}
	be := binary.BigEndian
	if be.Uint32(data[0:]) != auMagic {
		return nil, 0, ErrNotAU
	}
	offset := be.Uint32(data[4:])
	size := be.Uint32(data[8:])
	encoding := be.Uint32(data[12:])
	rate := be.Uint32(data[16:])
	channels := be.Uint32(data[20:])

	if offset < auHeaderSize || int(offset) > len(data) {
		return nil, 0, fmt.Errorf("au: invalid data offset %d", offset)
	}
	if channels != 1 && channels != 2 {
		return nil, 0, fmt.Errorf("au: unsupported channel count %d", channels)
	}
	if rate == 0 {
		return nil, 0, errors.New("au: sample rate is zero")
	}

	body := data[offset:]
	if size != auSizeAbsent && int(size) < len(body) {
		body = body[:size]
	}

	var samples []int16
	switch encoding {
	case auEncodingULaw:
		samples = make([]int16, len(body))
		for i, b := range body {
			samples[i] = ulawToLinear(b)
		}
	case auEncodingPCM16:
		samples = make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(be.Uint16(body[i*2:]))
		}
	default:
		return nil, 0, fmt.Errorf("au: unsupported encoding %d", encoding)
	}

	return toStereo(samples, int(channels)), int(rate), nil
}

// toStereo 交错样本 → 16 位小端立体声
func toStereo(samples []int16, channels int) []byte {
	frames := len(samples) / channels
	out := make([]byte, frames*4)
	for f := 0; f < frames; f++ {
		l := samples[f*channels]
		r := l
		if channels == 2 {
			r = samples[f*channels+1]
		}
		binary.LittleEndian.PutUint16(out[f*4:], uint16(l))
		binary.LittleEndian.PutUint16(out[f*4+2:], uint16(r))
	}
	return out
}

// ulawToLinear G.711 μ-law 解压
func ulawToLinear(u byte) int16 {
	u = ^u
	t := (int32(u&0x0f) << 3) + 0x84
	t <<= (u & 0x70) >> 4
	if u&0x80 != 0 {
		return int16(0x84 - t)
	}
	return int16(t - 0x84)
}
