// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gridmosaic

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		in      string
		a, b    int
		wantErr bool
	}{
		{in: "4x3", a: 4, b: 3},
		{in: " 1920 x 1080 ", a: 1920, b: 1080},
		{in: "0x5", a: 0, b: 5},
		{in: "4", wantErr: true},
		{in: "4x3x2", wantErr: true},
		{in: "ax3", wantErr: true},
		{in: "4x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, b, err := ParseDimensions(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDimensions(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (a != tt.a || b != tt.b) {
				t.Errorf("ParseDimensions(%q) = (%d, %d), want (%d, %d)", tt.in, a, b, tt.a, tt.b)
			}
		})
	}
}

func TestParseDimensionsErrorNamesInput(t *testing.T) {
	for _, in := range []string{"ax3", "4xb"} {
		_, _, err := ParseDimensions(in)
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Errorf("ParseDimensions(%q) error = %v, want strconv.ErrSyntax", in, err)
		}
		if err != nil && !strings.Contains(err.Error(), in) {
			t.Errorf("ParseDimensions(%q) error = %q, want it to contain the input", in, err)
		}
	}
}

func TestLoggerProgressFunc(t *testing.T) {
	entry := quietLogger()
	// must not panic for any combination
	for _, step := range []int{-1, 0, 1, 3} {
		progress := LoggerProgressFunc(entry, "", 10, step)
		for i := 1; i <= 10; i++ {
			progress(i)
		}
	}
	LoggerProgressFunc(nil, "prefix", 0, 1)(1)
	ProgressIgnore(1)
}

func TestIntMaxMin(t *testing.T) {
	if got := IntMax(1, 5, -3); got != 5 {
		t.Errorf("IntMax() = %d, want 5", got)
	}
	if got := IntMin(1, 5, -3); got != -3 {
		t.Errorf("IntMin() = %d, want -3", got)
	}
}
