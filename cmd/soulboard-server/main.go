package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/soulboard/soulboard-server/pkg/config"
	"github.com/soulboard/soulboard-server/pkg/operator"
	"github.com/soulboard/soulboard-server/pkg/oracle"
	"github.com/soulboard/soulboard-server/pkg/registry"
	"github.com/soulboard/soulboard-server/pkg/server"
	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
	"github.com/soulboard/soulboard-server/pkg/txn"
)

var configPath = flag.String("config", "config.yaml", "path to the configuration file")

func main() {
	flag.Parse()

	// A local .env is optional and only used for development overrides.
	_ = godotenv.Load()

	log := logrus.StandardLogger().WithField("type", "main")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	client := solana.New(cfg.SolanaRPCEndpoint)

	program := soulboard.NewProgram(cfg.ProgramKey(), cfg.CommitmentLevel())
	oracleProgram := oracle.NewProgram(cfg.OracleProgramKey(), cfg.CommitmentLevel())
	log.WithFields(logrus.Fields{
		"program":        cfg.ProgramID,
		"oracle_program": cfg.OracleProgramID,
		"commitment":     cfg.Commitment,
	}).Info("configured programs")

	op, err := operator.LoadKeypair(cfg.OperatorKeyPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load operator keypair")
	}
	log.WithField("operator", op.PublicKeyString()).Info("loaded operator identity")

	bootstrapper := registry.NewBootstrapper(client, program, op)
	if _, err := bootstrapper.EnsureInitialized(); err != nil {
		// Not fatal: endpoints that need the registry retry the bootstrap.
		log.WithError(err).Warn("registry bootstrap failed at startup")
	}

	srv := server.New(
		client,
		program,
		oracleProgram,
		txn.NewBuilder(client),
		bootstrapper,
		cfg.ListenAddress,
		cfg.RequestTimeout,
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("server failed")
		}
	case sig := <-shutdown:
		log.WithField("signal", sig).Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGracePeriod)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Error("shutdown did not complete cleanly")
		}
	}
}
