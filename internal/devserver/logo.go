// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

const logoSize = 64

// renderLogo draws the placeholder school logo: a red disc on white.
func renderLogo() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, logoSize, logoSize))
	center, radius := logoSize/2, logoSize/2-4

	for y := 0; y < logoSize; y++ {
		for x := 0; x < logoSize; x++ {
			dx, dy := x-center, y-center
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, color.RGBA{R: 0xc0, G: 0x1c, B: 0x28, A: 0xff})
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
