package main

import (
	"flag"
	"os"

	"link-tracker/internal/conf"
	"link-tracker/internal/server"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "link-tracker"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
}

func newLogger(c conf.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	if c.Format == "json" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func main() {
	flag.Parse()

	bc, err := conf.Load(flagconf)
	if err != nil {
		panic(err)
	}

	zl, err := newLogger(bc.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer zl.Sync()
	zl = zl.With(
		zap.String("service.id", id),
		zap.String("service.name", Name),
		zap.String("service.version", Version),
	)

	app, cleanup, err := wireApp(bc, zl, server.NewZapLogger(zl))
	if err != nil {
		zl.Fatal("failed to wire application", zap.Error(err))
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		zl.Error("application stopped with error", zap.Error(err))
	}
}
