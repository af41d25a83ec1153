package attrs

// Definition declares a named attribute for one entity kind: its base
// type, its fixed dimension, and the default installed on entities.
//
// Default stays caller-mutable after registration: entities created later
// receive a deep copy of whatever Default holds at that moment, so
// assigning a new Default changes what future entities get without
// retro-mutating existing ones.
type Definition struct {
	// Name identifies the attribute within its entity kind's registry.
	Name string

	// Kind is the base type every value under Name must have.
	Kind Type

	// Dimensions is the array length every value under Name must have.
	Dimensions int

	// Default is deep-copied onto each entity at install time.
	Default Value
}

// NewDefinition builds a definition with a zero-filled default of the
// given kind and dimension. Dimensions below 1 are clamped to 1.
func NewDefinition(name string, kind Type, dimensions int) *Definition {
	if dimensions < 1 {
		dimensions = 1
	}
	def := &Definition{Name: name, Kind: kind, Dimensions: dimensions}
	switch kind {
	case Int:
		def.Default = &IntValue{Data: make([]int32, dimensions)}
	case Float:
		def.Default = &FloatValue{Data: make([]float32, dimensions)}
	}

	return def
}

// DefaultCopy returns a deep copy of the current default, suitable for
// installing on an entity.
func (d *Definition) DefaultCopy() Value {
	return d.Default.DeepCopy()
}

// Matches reports whether v conforms to this definition's kind and
// dimension.
func (d *Definition) Matches(v Value) bool {
	return v != nil && v.Check(d.Kind, d.Dimensions)
}
