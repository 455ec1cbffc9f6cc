package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenSecret(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"gen-secret", "--length", "32"})

	require.NoError(t, cmd.Execute())

	secret := strings.TrimSpace(out.String())
	assert.Len(t, secret, 32)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), secret)
}

func TestGenSecret_TooShort(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"gen-secret", "--length", "8"})

	assert.ErrorContains(t, cmd.Execute(), "at least 16")
}

func TestCreateAdmin_RequiresFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"create-admin", "--name", "ops"})

	assert.ErrorContains(t, cmd.Execute(), "required flag")
}

func TestMigrate_Print(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"migrate", "--print"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "CREATE TABLE IF NOT EXISTS trips")
}
