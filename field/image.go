// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"
	"strconv"

	"cogentcore.org/vrml/base/iox/imagex"
	"golang.org/x/image/draw"
)

// Image is an uncompressed pixel image. Pixels are stored row by
// row starting with the bottom row, with Components bytes per pixel:
// 1 is grayscale, 2 is grayscale with alpha, 3 is RGB and 4 is RGBA.
// The zero value is the empty image.
type Image struct {
	Width      int
	Height     int
	Components int
	Pixels     []byte
}

// NewImage returns an image of the given size with the given pixel
// bytes, or a zeroed buffer if pixels is nil. It returns an error if
// the size is negative, comp is outside [0, 4], or the buffer does
// not have exactly width*height*comp bytes.
func NewImage(width, height, comp int, pixels []byte) (Image, error) {
	if width < 0 || height < 0 {
		return Image{}, fmt.Errorf("field.NewImage: invalid size %dx%d", width, height)
	}
	if comp < 0 || comp > 4 {
		return Image{}, fmt.Errorf("field.NewImage: invalid number of components %d", comp)
	}
	n := width * height * comp
	if pixels == nil {
		pixels = make([]byte, n)
	}
	if len(pixels) != n {
		return Image{}, fmt.Errorf("field.NewImage: %d pixel bytes for a %dx%dx%d image", len(pixels), width, height, comp)
	}
	return Image{Width: width, Height: height, Components: comp, Pixels: pixels}, nil
}

// offset returns the index of the first byte of pixel (x, y), where
// y = 0 is the bottom row.
func (im *Image) offset(x, y int) int {
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		panic(fmt.Sprintf("field.Image: pixel (%d, %d) out of range for a %dx%d image", x, y, im.Width, im.Height))
	}
	return (y*im.Width + x) * im.Components
}

// Pixel returns the components of pixel (x, y) packed into one
// integer, most significant component first. y = 0 is the bottom row.
func (im *Image) Pixel(x, y int) uint32 {
	off := im.offset(x, y)
	var p uint32
	for _, b := range im.Pixels[off : off+im.Components] {
		p = p<<8 | uint32(b)
	}
	return p
}

// SetPixel sets pixel (x, y) from components packed as by [Image.Pixel].
func (im *Image) SetPixel(x, y int, p uint32) {
	off := im.offset(x, y)
	for i := im.Components - 1; i >= 0; i-- {
		im.Pixels[off+i] = byte(p)
		p >>= 8
	}
}

// Clone returns a copy of the image that does not share its pixels.
func (im Image) Clone() Image {
	im.Pixels = slices.Clone(im.Pixels)
	return im
}

// Equal returns whether both images have the same size and pixels.
func (im Image) Equal(o Image) bool {
	return im.Width == o.Width && im.Height == o.Height && im.Components == o.Components &&
		bytes.Equal(im.Pixels, o.Pixels)
}

// NRGBA returns the image as an [image.NRGBA] with the top row first.
func (im *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := range im.Height {
		for x := range im.Width {
			off := im.offset(x, y)
			px := im.Pixels[off : off+im.Components]
			var c color.NRGBA
			switch im.Components {
			case 1:
				c = color.NRGBA{px[0], px[0], px[0], 0xff}
			case 2:
				c = color.NRGBA{px[0], px[0], px[0], px[1]}
			case 3:
				c = color.NRGBA{px[0], px[1], px[2], 0xff}
			case 4:
				c = color.NRGBA{px[0], px[1], px[2], px[3]}
			}
			dst.SetNRGBA(x, im.Height-1-y, c)
		}
	}
	return dst
}

// SetFromImage sets the image from the given image with comp
// components per pixel. Gray levels for 1 and 2 component images
// use [color.GrayModel].
func (im *Image) SetFromImage(src image.Image, comp int) error {
	b := src.Bounds()
	res, err := NewImage(b.Dx(), b.Dy(), comp, nil)
	if err != nil {
		return err
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	for y := range res.Height {
		for x := range res.Width {
			c := rgba.NRGBAAt(x, res.Height-1-y)
			g := color.GrayModel.Convert(c).(color.Gray).Y
			off := res.offset(x, y)
			px := res.Pixels[off : off+comp]
			switch comp {
			case 1:
				px[0] = g
			case 2:
				px[0], px[1] = g, c.A
			case 3:
				px[0], px[1], px[2] = c.R, c.G, c.B
			case 4:
				px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			}
		}
	}
	*im = res
	return nil
}

// Scaled returns a copy of the image resized to width x height
// with bilinear interpolation.
func (im *Image) Scaled(width, height int) (Image, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	src := im.NRGBA()
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	var res Image
	err := res.SetFromImage(dst, im.Components)
	return res, err
}

// OpenImage reads the image file with the given name. Gray images
// get one component, opaque color images three and others four.
func OpenImage(filename string) (Image, error) {
	src, _, err := imagex.Open(filename)
	if err != nil {
		return Image{}, err
	}
	var im Image
	err = im.SetFromImage(src, imagex.Components(src))
	return im, err
}

// Save writes the image to the given file, in the format given by
// the file extension.
func (im *Image) Save(filename string) error {
	return imagex.Save(im.NRGBA(), filename)
}

func (im Image) String() string {
	var b bytes.Buffer
	b.WriteString(strconv.Itoa(im.Width))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(im.Height))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(im.Components))
	if im.Components == 0 {
		return b.String()
	}
	for y := range im.Height {
		for x := range im.Width {
			fmt.Fprintf(&b, " 0x%0*X", 2*im.Components, im.Pixel(x, y))
		}
	}
	return b.String()
}

// SFImage is a pixel image.
type SFImage struct {
	Value Image
}

func (x *SFImage) isValue() {}

func (x *SFImage) Type() Type { return TypeSFImage }

func (x *SFImage) Clone() Value { return &SFImage{Value: x.Value.Clone()} }

func (x *SFImage) Assign(v Value) error {
	o, ok := v.(*SFImage)
	if !ok {
		return mismatch(TypeSFImage, v)
	}
	x.Value = o.Value.Clone()
	return nil
}

func (x *SFImage) Equal(v Value) bool {
	o, ok := v.(*SFImage)
	return ok && x.Value.Equal(o.Value)
}

func (x *SFImage) String() string { return x.Value.String() }

func (x *SFImage) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}
