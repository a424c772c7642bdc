// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemart-inc/pokemartd/configuration"
	"github.com/pokemart-inc/pokemartd/fault"
)

type loggingType struct {
	Size    int               `gluamapper:"size"`
	Count   int               `gluamapper:"count"`
	Console bool              `gluamapper:"console"`
	Levels  map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string      `gluamapper:"data_directory"`
	Connect       string      `gluamapper:"connect"`
	Identity      string      `gluamapper:"identity"`
	Subscribe     string      `gluamapper:"subscribe"`
	Logging       loggingType `gluamapper:"logging"`
}

func TestParseConfigurationFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile(filepath.Join("testdata", "test.lua"), config)
	require.NoError(t, err)

	assert.Equal(t, ".", config.DataDirectory)
	assert.Equal(t, "127.0.0.1:4130", config.Connect)
	assert.Equal(t, "0x00000000000000000000000000000000000000b2", config.Identity)
	assert.Equal(t, "tcp://127.0.0.1:4140", config.Subscribe)
	assert.Equal(t, 1048576, config.Logging.Size)
	assert.Equal(t, 10, config.Logging.Count)
	assert.False(t, config.Logging.Console)
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"])
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile(filepath.Join("testdata", "no-such.lua"), config)
	assert.Error(t, err)
}

func TestParseNotAPointer(t *testing.T) {
	err := configuration.ParseConfigurationFile(filepath.Join("testdata", "test.lua"), testConfiguration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
