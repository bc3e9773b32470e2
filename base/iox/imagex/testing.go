// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image/color"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// CompareUint8 returns true if two numbers differ by at most tol.
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if each channel of two colors
// differs by at most tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) &&
		CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) &&
		CompareUint8(cc.A, ic.A, tol)
}

// AssertColor reports an error unless got is within tol of want
// in every channel.
func AssertColor(t TestingT, want, got color.Color, tol int, msgAndArgs ...any) bool {
	w := color.RGBAModel.Convert(want).(color.RGBA)
	g := color.RGBAModel.Convert(got).(color.RGBA)
	if CompareColors(w, g, tol) {
		return true
	}
	msg := ""
	if len(msgAndArgs) > 0 {
		if f, ok := msgAndArgs[0].(string); ok {
			msg = ": " + fmt.Sprintf(f, msgAndArgs[1:]...)
		}
	}
	t.Errorf("expected color %v within %d, but got %v%s", w, tol, g, msg)
	return false
}
