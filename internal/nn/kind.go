package nn

// Kind identifies a layer kind. The set is closed: initializer policies
// and other per-kind behavior switch over Kind values instead of doing
// runtime type inspection, so adding a layer means adding a Kind and
// handling it where the compiler points.
type Kind int

// Layer kinds.
const (
	KindLinear Kind = iota
	KindAffine
	KindReLU
	KindSigmoid
	KindTanh
	KindSequential
)

// String returns the layer kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "Linear"
	case KindAffine:
		return "Affine"
	case KindReLU:
		return "ReLU"
	case KindSigmoid:
		return "Sigmoid"
	case KindTanh:
		return "Tanh"
	case KindSequential:
		return "Sequential"
	default:
		return "Unknown"
	}
}
