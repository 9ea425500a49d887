package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"Scalar", Shape{}, 1},
		{"Vector", Shape{5}, 5},
		{"Matrix", Shape{2, 3}, 6},
		{"ThreeD", Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.NumElements(); got != tt.want {
				t.Errorf("NumElements() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() on valid shape: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate() accepted zero dimension")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Validate() accepted negative dimension")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("unequal shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank reported equal")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := (Shape{2, 3, 4}).ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides() = %v, want %v", strides, want)
			break
		}
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		ax, ndim int
		want     int
		wantErr  bool
	}{
		{0, 3, 0, false},
		{2, 3, 2, false},
		{-1, 3, 2, false},
		{-3, 3, 0, false},
		{3, 3, 0, true},
		{-4, 3, 0, true},
	}

	for _, tt := range tests {
		got, err := NormalizeAxis(tt.ax, tt.ndim)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeAxis(%d, %d): expected error", tt.ax, tt.ndim)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAxis(%d, %d): %v", tt.ax, tt.ndim, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeAxis(%d, %d) = %d, want %d", tt.ax, tt.ndim, got, tt.want)
		}
	}
}

func TestDataType(t *testing.T) {
	if Float32.Size() != 4 || Float64.Size() != 8 || Complex64.Size() != 8 || Complex128.Size() != 16 {
		t.Error("DataType.Size() returned wrong byte sizes")
	}
	if Float64.IsComplex() || !Complex128.IsComplex() {
		t.Error("DataType.IsComplex() wrong")
	}
	if Float32.Complex() != Complex64 || Float64.Complex() != Complex128 {
		t.Error("DataType.Complex() did not promote precision-matched")
	}
	if Complex128.Complex() != Complex128 {
		t.Error("DataType.Complex() changed a complex dtype")
	}
	if Complex64.Real() != Float32 || Complex128.Real() != Float64 {
		t.Error("DataType.Real() wrong")
	}
	if Float64.String() != "float64" || Complex128.String() != "complex128" {
		t.Error("DataType.String() wrong")
	}
}
