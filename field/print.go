// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"strconv"
	"strings"

	"cogentcore.org/vrml/math32"
)

// These format single elements in the textual encoding.

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt32(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}

func formatFloats(fs ...float32) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = formatFloat(f)
	}
	return strings.Join(strs, " ")
}

func formatDoubles(fs ...float64) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = formatDouble(f)
	}
	return strings.Join(strs, " ")
}

func formatColor(c Color) string { return formatFloats(c.R, c.G, c.B) }

func formatColorRGBA(c ColorRGBA) string { return formatFloats(c.R, c.G, c.B, c.A) }

func formatRotation(r Rotation) string {
	a := r.Axis()
	return formatFloats(a.X, a.Y, a.Z, r.Angle())
}

func formatVec2f(v math32.Vector2) string { return formatFloats(v.X, v.Y) }

func formatVec3f(v math32.Vector3) string { return formatFloats(v.X, v.Y, v.Z) }

func formatVec2d(v Vec2d) string { return formatDoubles(v.X, v.Y) }

func formatVec3d(v Vec3d) string { return formatDoubles(v.X, v.Y, v.Z) }

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func formatString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

func formatNode(n Node) string {
	if n == nil {
		return "NULL"
	}
	var b bytes.Buffer
	if err := n.Print(&b); err != nil {
		return "NULL"
	}
	return b.String()
}

// formatArray formats the values as a bracketed, comma separated list.
func formatArray[T any](vals []T, format func(T) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(format(v))
	}
	b.WriteByte(']')
	return b.String()
}
