// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("test error")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 42, Log1(42, nil))
	assert.Equal(t, 42, Log1(42, New("test error")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("test error")) })
	assert.Equal(t, "ok", Must1("ok", nil))
}
