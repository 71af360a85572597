// Package main provides the Weft ML Library CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/weft-ml/weft/autodiff"
	"github.com/weft-ml/weft/backend/cpu"
	"github.com/weft-ml/weft/internal/logger"
	"github.com/weft-ml/weft/nn"
)

const version = "v0.1.0-dev"

type backend = *autodiff.Backend[*cpu.Backend]

func main() {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", "log format (console, json)")
	configPath := flag.String("init-config", "", "YAML initializer config (defaults to the built-in policy set)")
	flag.Parse()

	logger.Setup(*logLevel, *logFormat)

	switch flag.Arg(0) {
	case "version":
		fmt.Printf("Weft ML Library %s\n", version)
	case "describe":
		if err := describe(*configPath); err != nil {
			logger.Log.Error("describe failed", "error", err)
			os.Exit(1)
		}
	default:
		fmt.Println("Weft ML Library - Parameter introspection and initialization for Go")
		fmt.Printf("Version: %s\n\n", version)
		fmt.Println("Commands:")
		fmt.Println("  version     Show version")
		fmt.Println("  describe    Build the demo model and list its parameters")
	}
}

// describe builds a small model with a tied projection, applies the
// initializer config, and logs every parameter path.
func describe(configPath string) error {
	cfg := nn.DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read init config: %w", err)
		}
		cfg, err = nn.ParseConfig(data)
		if err != nil {
			return err
		}
	}

	b := autodiff.New(cpu.New())
	model, err := demoModel(b)
	if err != nil {
		return err
	}

	if err := nn.Initialize[backend](model, cfg); err != nil {
		return err
	}
	logger.Log.Info("model initialized",
		"paths", len(model.NamedParameters()),
		"distinct", len(nn.Parameters[backend](model)))

	for _, np := range model.NamedParameters() {
		t := np.Param.Tensor()
		logger.Log.Info("parameter",
			"path", np.Path,
			"name", np.Param.Name(),
			"id", np.Param.ID().String(),
			"shape", fmt.Sprint(t.Shape()),
			"elems", t.NumElements(),
			"trainable", np.Param.Trainable())
	}
	return nil
}

// demoModel chains an encoder, a nonlinearity, a feature-wise affine
// and a decoder that ties the encoder's weight.
func demoModel(b backend) (*nn.Sequential[backend], error) {
	encoder := nn.NewLinear(16, 16, b)
	decoder, err := nn.NewLinearShared(encoder.Weight(), nil, b)
	if err != nil {
		return nil, err
	}

	model := nn.NewSequential[backend]()
	if err := model.AddNamed("encoder", encoder); err != nil {
		return nil, err
	}
	if err := model.AddNamed("act", nn.NewReLU[backend]()); err != nil {
		return nil, err
	}
	if err := model.AddNamed("scale", nn.NewAffine(16, b)); err != nil {
		return nil, err
	}
	if err := model.AddNamed("decoder", decoder); err != nil {
		return nil, err
	}
	return model, nil
}
