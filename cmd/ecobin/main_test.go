package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecobin-app/ecobin/internal/cli"
)

func TestMainComponents(t *testing.T) {
	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version)
		assert.NotNil(t, root)
		assert.Equal(t, "ecobin", root.Use)
		assert.Equal(t, version, root.Version)
	})

	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})
}
