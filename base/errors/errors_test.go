// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 4, Log1(4, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "x", Must1("x", nil))
	assert.Panics(t, func() { Must1("x", New("boom")) })
}

func helper() string { return CallerInfo() }

func TestCallerInfo(t *testing.T) {
	assert.Contains(t, helper(), "TestCallerInfo")
	assert.Contains(t, helper(), "errors_test.go")
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")
	err := Join(a, b)
	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))
	assert.Nil(t, Join(nil, nil))
}
