package attrs

import "math"

// Type discriminates the base type of an attribute value.
type Type int

const (
	// Int marks values backed by []int32.
	Int Type = iota
	// Float marks values backed by []float32.
	Float
)

// String returns a human-readable name for the type.
func (t Type) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	default:
		return "Unknown"
	}
}

// Value is a typed, fixed-dimension attribute payload attached to a mesh
// entity. The two implementations are IntValue and FloatValue.
type Value interface {
	// Kind reports the base type of the payload.
	Kind() Type

	// Len reports the number of elements in the payload.
	Len() int

	// Check reports whether the value matches the given kind and dimension.
	Check(kind Type, dimensions int) bool

	// DeepCopy returns an independent copy of the value; mutating the
	// copy never affects the original.
	DeepCopy() Value
}

// IntValue is a flat array of 32-bit signed integers.
type IntValue struct {
	Data []int32
}

// NewIntValue builds an IntValue from the given elements.
func NewIntValue(data ...int32) *IntValue {
	return &IntValue{Data: data}
}

// Kind reports Int.
func (v *IntValue) Kind() Type { return Int }

// Len reports the dimension of the payload.
func (v *IntValue) Len() int { return len(v.Data) }

// Check reports whether the value is an Int of the given dimension.
func (v *IntValue) Check(kind Type, dimensions int) bool {
	return kind == Int && len(v.Data) == dimensions
}

// DeepCopy returns an independent copy of the payload.
func (v *IntValue) DeepCopy() Value {
	data := make([]int32, len(v.Data))
	copy(data, v.Data)

	return &IntValue{Data: data}
}

// FloatValue is a flat array of IEEE-754 32-bit floats.
type FloatValue struct {
	Data []float32
}

// NewFloatValue builds a FloatValue from the given elements.
func NewFloatValue(data ...float32) *FloatValue {
	return &FloatValue{Data: data}
}

// Kind reports Float.
func (v *FloatValue) Kind() Type { return Float }

// Len reports the dimension of the payload.
func (v *FloatValue) Len() int { return len(v.Data) }

// Check reports whether the value is a Float of the given dimension.
func (v *FloatValue) Check(kind Type, dimensions int) bool {
	return kind == Float && len(v.Data) == dimensions
}

// DeepCopy returns an independent copy of the payload.
func (v *FloatValue) DeepCopy() Value {
	data := make([]float32, len(v.Data))
	copy(data, v.Data)

	return &FloatValue{Data: data}
}

// Distance returns the euclidean distance between two values of matching
// kind and dimension, and +Inf for any mismatch (including nil values).
// Complexity: O(dimensions).
func Distance(a, b Value) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return math.Inf(1)
	}

	var sum float64
	switch a.Kind() {
	case Int:
		av, bv := a.(*IntValue), b.(*IntValue)
		for i := range av.Data {
			d := float64(av.Data[i]) - float64(bv.Data[i])
			sum += d * d
		}
	case Float:
		av, bv := a.(*FloatValue), b.(*FloatValue)
		for i := range av.Data {
			d := float64(av.Data[i]) - float64(bv.Data[i])
			sum += d * d
		}
	}

	return math.Sqrt(sum)
}
