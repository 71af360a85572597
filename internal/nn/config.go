package nn

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/weft-ml/weft/internal/tensor"
)

// PolicySpec names an initializer policy and its parameters. The
// zero value means "leave the parameter untouched".
//
// Policies: "constant" (Value), "zeros", "ones", "uniform" (Low, High),
// "normal" (Mean, Std), "xavier_uniform" (fans taken from the layer).
type PolicySpec struct {
	Policy string  `yaml:"policy"`
	Value  float64 `yaml:"value,omitempty"`
	Low    float64 `yaml:"low,omitempty"`
	High   float64 `yaml:"high,omitempty"`
	Mean   float64 `yaml:"mean,omitempty"`
	Std    float64 `yaml:"std,omitempty"`
}

// initializer resolves the spec to a concrete Initializer. The layer's
// fan dimensions are supplied by the caller because only the layer
// knows them. Returns nil for an empty spec.
func (p PolicySpec) initializer(fanIn, fanOut int) (Initializer, error) {
	switch p.Policy {
	case "":
		return nil, nil
	case "constant":
		return Constant{Value: p.Value}, nil
	case "zeros":
		return Zeros(), nil
	case "ones":
		return Ones(), nil
	case "uniform":
		return Uniform{Low: p.Low, High: p.High}, nil
	case "normal":
		return Normal{Mean: p.Mean, Std: p.Std}, nil
	case "xavier_uniform":
		return XavierUniform{FanIn: fanIn, FanOut: fanOut}, nil
	default:
		return nil, fmt.Errorf("unknown initializer policy %q", p.Policy)
	}
}

// LinearPolicy configures initialization for Linear layers.
type LinearPolicy struct {
	Weight PolicySpec `yaml:"weight"`
	Bias   PolicySpec `yaml:"bias"`
}

// AffinePolicy configures initialization for Affine layers.
type AffinePolicy struct {
	Gain PolicySpec `yaml:"gain"`
	Bias PolicySpec `yaml:"bias"`
}

// Config names the initializer policy per layer kind. There is no
// implicit default inside constructors: a freshly built model is
// all-zero until a Config is applied with Initialize.
type Config struct {
	Linear LinearPolicy `yaml:"linear"`
	Affine AffinePolicy `yaml:"affine"`
}

// DefaultConfig returns the conventional policy set: Xavier-uniform
// linear weights, zero biases, unit gains.
func DefaultConfig() Config {
	return Config{
		Linear: LinearPolicy{
			Weight: PolicySpec{Policy: "xavier_uniform"},
			Bias:   PolicySpec{Policy: "zeros"},
		},
		Affine: AffinePolicy{
			Gain: PolicySpec{Policy: "ones"},
			Bias: PolicySpec{Policy: "zeros"},
		},
	}
}

// ParseConfig reads a Config from YAML.
//
// Example:
//
//	linear:
//	  weight: {policy: xavier_uniform}
//	  bias: {policy: zeros}
//	affine:
//	  gain: {policy: ones}
//	  bias: {policy: constant, value: 0.1}
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse init config: %w", err)
	}
	return cfg, nil
}

// Initialize walks the module tree and applies the configured policy to
// every layer whose kind the config names. Kinds without a policy are
// left untouched; a tied parameter reachable under several paths is
// filled once per visit, each visit overwriting the last, so the final
// values are still consistent across its use sites.
func Initialize[B tensor.Backend](m Module[B], cfg Config) error {
	var firstErr error

	Apply(m, func(mod Module[B]) {
		if firstErr != nil {
			return
		}
		switch mod.Kind() {
		case KindLinear:
			l := mod.(*Linear[B])
			firstErr = initParam(cfg.Linear.Weight, l.Weight(), l.InFeatures(), l.OutFeatures())
			if firstErr == nil && l.Bias() != nil {
				firstErr = initParam(cfg.Linear.Bias, l.Bias(), l.InFeatures(), l.OutFeatures())
			}
		case KindAffine:
			a := mod.(*Affine[B])
			firstErr = initParam(cfg.Affine.Gain, a.Gain(), a.Features(), a.Features())
			if firstErr == nil {
				firstErr = initParam(cfg.Affine.Bias, a.Bias(), a.Features(), a.Features())
			}
		default:
			// No policy for this kind: leave it untouched.
		}
	})

	return firstErr
}

// initParam resolves a policy spec and applies it to one parameter.
func initParam[B tensor.Backend](spec PolicySpec, p *Parameter[B], fanIn, fanOut int) error {
	init, err := spec.initializer(fanIn, fanOut)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name(), err)
	}
	if init != nil {
		init.Init(p.Tensor().Raw())
	}
	return nil
}
