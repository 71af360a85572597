package tensor

import (
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// fakeBackend satisfies Backend without doing any math. The tensor
// package itself never calls into a backend except through ops.go.
type fakeBackend struct{}

func (fakeBackend) Add(a, b *RawTensor) *RawTensor                { return a }
func (fakeBackend) Sub(a, b *RawTensor) *RawTensor                { return a }
func (fakeBackend) Mul(a, b *RawTensor) *RawTensor                { return a }
func (fakeBackend) Div(a, b *RawTensor) *RawTensor                { return a }
func (fakeBackend) MatMul(a, b *RawTensor) *RawTensor             { return a }
func (fakeBackend) Reshape(a *RawTensor, s Shape) *RawTensor      { return a }
func (fakeBackend) Transpose(a *RawTensor, axes ...int) *RawTensor { return a }
func (fakeBackend) MulScalar(a *RawTensor, s float64) *RawTensor  { return a }
func (fakeBackend) Sum(a *RawTensor) *RawTensor                   { return a }
func (fakeBackend) SumDim(a *RawTensor, d int, k bool) *RawTensor { return a }
func (fakeBackend) Name() string                                  { return "fake" }

// DType tests

func TestDataTypeSize(t *testing.T) {
	if got := Float32.Size(); got != 4 {
		t.Errorf("Float32.Size() = %d, want 4", got)
	}
	if got := Float64.Size(); got != 8 {
		t.Errorf("Float64.Size() = %d, want 8", got)
	}
}

func TestDataTypeString(t *testing.T) {
	if got := Float32.String(); got != "float32" {
		t.Errorf("Float32.String() = %q, want %q", got, "float32")
	}
	if got := Float64.String(); got != "float64" {
		t.Errorf("Float64.String() = %q, want %q", got, "float64")
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
}

// Shape tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate(2,3) unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate(2,0) expected error for zero dimension")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Validate(-1,3) expected error for negative dimension")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("ComputeStrides(2,3,4) = %v, want %v", strides, want)
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
	}{
		{Shape{2, 3}, Shape{2, 3}, Shape{2, 3}, false},
		{Shape{2, 3}, Shape{3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{1, 3}, Shape{2, 3}, true},
		{Shape{4, 1}, Shape{1, 5}, Shape{4, 5}, true},
		{Shape{3}, Shape{2, 1}, Shape{2, 3}, true},
	}

	for _, tt := range tests {
		got, needs, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		assertEqualShape(t, tt.want, got, "broadcast result")
		if needs != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) needsBroadcast = %v, want %v", tt.a, tt.b, needs, tt.broadcast)
		}
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	if _, _, err := BroadcastShapes(Shape{2, 3}, Shape{2, 4}); err == nil {
		t.Error("expected error for incompatible shapes (2,3) vs (2,4)")
	}
}

// RawTensor tests

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, raw.Shape(), "NewRaw shape")
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
	for _, v := range raw.AsFloat32() {
		if v != 0 {
			t.Fatal("NewRaw buffer not zero-initialized")
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float32); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestRawCloneDistinctIdentity(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32)
	raw.AsFloat32()[0] = 7

	clone := raw.Clone()
	if clone == raw {
		t.Fatal("Clone returned the same pointer")
	}
	assertEqualFloat32(t, 7, clone.AsFloat32()[0], "Clone copies values")

	clone.AsFloat32()[0] = 3
	assertEqualFloat32(t, 7, raw.AsFloat32()[0], "Clone must not alias the original buffer")
}

func TestRawWithShapeSharesBuffer(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32)
	view, err := raw.WithShape(Shape{3, 2})
	if err != nil {
		t.Fatalf("WithShape: %v", err)
	}
	if view == raw {
		t.Fatal("WithShape must return a new RawTensor header")
	}

	view.AsFloat32()[0] = 42
	assertEqualFloat32(t, 42, raw.AsFloat32()[0], "WithShape must share the buffer")
}

func TestRawWithShapeElementMismatch(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32)
	if _, err := raw.WithShape(Shape{4}); err == nil {
		t.Error("expected error for element count mismatch")
	}
}

func TestAsFloat32WrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float64)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for AsFloat32 on float64 tensor")
		}
	}()
	raw.AsFloat32()
}

// Tensor tests

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice(data, Shape{2, 3}, fakeBackend{})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, tt.Shape(), "FromSlice shape")
	assertEqualFloat32(t, 5, tt.At(1, 1), "At(1,1)")
	if tt.DType() != Float32 {
		t.Errorf("DType() = %v, want Float32", tt.DType())
	}

	// FromSlice copies, so mutating the source must not leak in.
	data[0] = 99
	assertEqualFloat32(t, 1, tt.At(0, 0), "FromSlice must copy the input")
}

func TestFromSliceShapeMismatch(t *testing.T) {
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, fakeBackend{}); err == nil {
		t.Error("expected error for shape/length mismatch")
	}
}

func TestTensorSetAt(t *testing.T) {
	tt := Zeros[float32](Shape{2, 2}, fakeBackend{})
	tt.Set(3.5, 1, 0)
	assertEqualFloat32(t, 3.5, tt.At(1, 0), "Set/At roundtrip")
	assertEqualFloat32(t, 0, tt.At(0, 0), "untouched element")
}

func TestTensorAtOutOfBounds(t *testing.T) {
	tt := Zeros[float32](Shape{2, 2}, fakeBackend{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds index")
		}
	}()
	tt.At(2, 0)
}

func TestTensorItem(t *testing.T) {
	tt := Full(Shape{1}, float32(2.5), fakeBackend{})
	assertEqualFloat32(t, 2.5, tt.Item(), "Item")
}

func TestTensorItemMultiElement(t *testing.T) {
	tt := Zeros[float32](Shape{2}, fakeBackend{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Item on multi-element tensor")
		}
	}()
	tt.Item()
}

func TestTensorClone(t *testing.T) {
	tt := Full(Shape{3}, float32(1), fakeBackend{})
	clone := tt.Clone()
	clone.Set(9, 0)
	assertEqualFloat32(t, 1, tt.At(0), "Clone must not alias storage")
	if clone.Raw() == tt.Raw() {
		t.Error("Clone must produce a distinct RawTensor identity")
	}
}

func TestTensorRequireGrad(t *testing.T) {
	tt := Zeros[float32](Shape{2}, fakeBackend{})
	if tt.RequiresGrad() {
		t.Error("new tensor should not require grad")
	}
	if got := tt.RequireGrad(); got != tt {
		t.Error("RequireGrad should return the receiver")
	}
	if !tt.RequiresGrad() {
		t.Error("RequiresGrad should be true after RequireGrad")
	}
}

func TestCreationFunctions(t *testing.T) {
	ones := Ones[float32](Shape{2, 2}, fakeBackend{})
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assertEqualFloat32(t, 1, ones.At(i, j), "Ones")
		}
	}

	full := Full(Shape{3}, float64(0.5), fakeBackend{})
	if full.At(2) != 0.5 {
		t.Errorf("Full: got %v, want 0.5", full.At(2))
	}

	r := Rand[float32](Shape{100}, fakeBackend{})
	for _, v := range r.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("Rand value %v outside [0, 1)", v)
		}
	}

	n := Randn[float64](Shape{101}, fakeBackend{})
	if n.NumElements() != 101 {
		t.Errorf("Randn: %d elements, want 101", n.NumElements())
	}
}
