// Package config holds the server configuration, loaded from an optional
// config file and the environment.
package config

import (
	"crypto/ed25519"
	"os"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`

	ListenAddress string `mapstructure:"listen_address"`

	SolanaRPCEndpoint string `mapstructure:"solana_rpc_endpoint"`

	// Program ids name the deployed programs on the target cluster. Both
	// are required at startup.
	ProgramID       string `mapstructure:"program_id"`
	OracleProgramID string `mapstructure:"oracle_program_id"`

	// OperatorKeyPath points at a Solana CLI keypair file. The key itself
	// never appears in config.
	OperatorKeyPath string `mapstructure:"operator_key_path"`

	Commitment string `mapstructure:"commitment"`

	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	ShutdownGracePeriod time.Duration `mapstructure:"shutdown_grace_period"`
}

var defaultConfig = Config{
	LogLevel: "info",

	ListenAddress: ":8080",

	Commitment: "finalized",

	RequestTimeout:      30 * time.Second,
	ShutdownGracePeriod: 30 * time.Second,
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	_ = viper.BindEnv("listen_address", "LISTEN_ADDRESS")

	_ = viper.BindEnv("solana_rpc_endpoint", "SOLANA_RPC_ENDPOINT")

	_ = viper.BindEnv("program_id", "PROGRAM_ID")
	_ = viper.BindEnv("oracle_program_id", "ORACLE_PROGRAM_ID")

	_ = viper.BindEnv("operator_key_path", "OPERATOR_KEY_PATH")

	_ = viper.BindEnv("commitment", "COMMITMENT")

	_ = viper.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	_ = viper.BindEnv("shutdown_grace_period", "SHUTDOWN_GRACE_PERIOD")
}

// Load reads the config file at path, when one exists, applies environment
// overrides, and validates required values.
func Load(path string) (*Config, error) {
	if path != "" {
		// An absent config file is fine, the environment can carry the
		// whole configuration.
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to check config file")
		}
	}

	config := defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.SolanaRPCEndpoint == "" {
		return errors.New("solana_rpc_endpoint is required")
	}
	if c.OperatorKeyPath == "" {
		return errors.New("operator_key_path is required")
	}

	switch c.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		return errors.Errorf("invalid commitment: %s", c.Commitment)
	}

	for _, id := range []string{c.ProgramID, c.OracleProgramID} {
		if id == "" {
			return errors.New("program_id and oracle_program_id are required")
		}
		raw, err := base58.Decode(id)
		if err != nil || len(raw) != 32 {
			return errors.Errorf("invalid program id: %s", id)
		}
	}

	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}

	return nil
}

// ProgramKey returns the configured program id as raw key bytes.
func (c *Config) ProgramKey() ed25519.PublicKey {
	return mustKey(c.ProgramID)
}

// OracleProgramKey returns the configured oracle program id as raw key bytes.
func (c *Config) OracleProgramKey() ed25519.PublicKey {
	return mustKey(c.OracleProgramID)
}

// CommitmentLevel maps the configured commitment string onto the RPC enum.
func (c *Config) CommitmentLevel() solana.Commitment {
	switch c.Commitment {
	case "processed":
		return solana.CommitmentProcessed
	case "confirmed":
		return solana.CommitmentConfirmed
	default:
		return solana.CommitmentFinalized
	}
}

// mustKey assumes Validate has run.
func mustKey(id string) ed25519.PublicKey {
	raw, err := base58.Decode(id)
	if err != nil {
		panic(err)
	}
	return ed25519.PublicKey(raw)
}
