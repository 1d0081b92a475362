package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

func validConfig() Config {
	c := defaultConfig
	c.SolanaRPCEndpoint = "http://localhost:8899"
	c.OperatorKeyPath = "/etc/soulboard/id.json"
	c.ProgramID = "6GetNC8W9RUzWeTbk5VmKhfwpakhzAqjEPffGJMtq8y7"
	c.OracleProgramID = "BkKcenZveLhg2LrHiX45hc937nQGpri2nvfvXfdcUZNN"
	return c
}

func TestConfig_Validate(t *testing.T) {
	c := validConfig()
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.SolanaRPCEndpoint = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.OperatorKeyPath = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Commitment = "instant"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Commitment = "confirmed"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.ProgramID = "not-base58!"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.ProgramID = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.OracleProgramID = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.RequestTimeout = -time.Second
	assert.Error(t, c.Validate())
}

func TestConfig_ParsedValues(t *testing.T) {
	c := validConfig()

	assert.Len(t, []byte(c.ProgramKey()), 32)
	assert.Len(t, []byte(c.OracleProgramKey()), 32)

	c.Commitment = "processed"
	assert.Equal(t, solana.CommitmentProcessed, c.CommitmentLevel())

	c.Commitment = "confirmed"
	assert.Equal(t, solana.CommitmentConfirmed, c.CommitmentLevel())

	c.Commitment = "finalized"
	assert.Equal(t, solana.CommitmentFinalized, c.CommitmentLevel())
}
