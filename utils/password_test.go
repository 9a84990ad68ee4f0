package utils

import (
	"testing"

	"verduleria/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAdminPin_PlainCompare(t *testing.T) {
	config.AppConfig = &config.Config{AdminPIN: "1234"}

	ok, err := VerifyAdminPin("1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyAdminPin("0000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyAdminPin_HashedPin(t *testing.T) {
	hash, err := HashPin("4321")
	require.NoError(t, err)

	config.AppConfig = &config.Config{AdminPIN: "1234", AdminPINHash: hash}

	ok, err := VerifyAdminPin("4321")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyAdminPin("1234")
	require.NoError(t, err)
	assert.False(t, ok, "plain PIN must be ignored once a hash is configured")
}
