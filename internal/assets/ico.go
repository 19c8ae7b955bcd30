// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assets

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoMaxSize    = 256
)

// icoSizes are the entry sizes EncodeICO picks from. Sizes larger than the
// encoded image are skipped.
var icoSizes = []int{16, 24, 32, 48, 64, 128, icoMaxSize}

// EncodeICO writes img as an ICO file. The file holds one PNG-compressed
// entry per size in icoSizes that fits into img, each scaled down from img
// with its aspect ratio preserved. An image smaller than every size is
// written as a single entry of its own size.
func EncodeICO(w io.Writer, img image.Image) error {
	b := img.Bounds()

	var frames []image.Image
	for _, size := range icoSizes {
		if size > b.Dx() || size > b.Dy() {
			break
		}
		frames = append(frames, Thumbnail(img, size))
	}
	if len(frames) == 0 {
		frames = append(frames, img)
	}

	payloads := make([][]byte, len(frames))
	for i, frame := range frames {
		var buf bytes.Buffer
		if err := EncodePNG(&buf, frame); err != nil {
			return err
		}
		payloads[i] = buf.Bytes()
	}

	dirSize := icoHeaderSize + icoEntrySize*len(frames)
	buf := make([]byte, dirSize)

	// ICONDIR.
	binary.LittleEndian.PutUint16(buf[0:], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1) // type: icon
	binary.LittleEndian.PutUint16(buf[4:], uint16(len(frames)))

	// ICONDIRENTRY: width, height, palette size, reserved, color planes,
	// bits per pixel, payload size and payload offset.
	offset := dirSize
	for i, frame := range frames {
		fb := frame.Bounds()
		e := buf[icoHeaderSize+i*icoEntrySize:]
		e[0] = icoDim(fb.Dx())
		e[1] = icoDim(fb.Dy())
		e[2] = 0
		e[3] = 0
		binary.LittleEndian.PutUint16(e[4:], 1)
		binary.LittleEndian.PutUint16(e[6:], 32)
		binary.LittleEndian.PutUint32(e[8:], uint32(len(payloads[i])))
		binary.LittleEndian.PutUint32(e[12:], uint32(offset))
		offset += len(payloads[i])
	}

	for _, p := range payloads {
		buf = append(buf, p...)
	}
	_, err := w.Write(buf)
	return err
}

// icoDim encodes a dimension for ICONDIRENTRY, where 0 means 256.
func icoDim(n int) byte {
	if n >= icoMaxSize {
		return 0
	}
	return byte(n)
}
