package abiencode

// Invocation is one (types, values) pair to encode.
// Invocation is immutable - modifier methods return new instances.
type Invocation struct {
	name   string
	types  []string
	values []any
}

// NewInvocation creates an Invocation. The slices are copied.
func NewInvocation(types []string, values ...any) *Invocation {
	inv := &Invocation{
		types:  make([]string, len(types)),
		values: make([]any, len(values)),
	}
	copy(inv.types, types)
	copy(inv.values, values)
	return inv
}

// Name returns the invocation label, empty if none was set.
func (inv *Invocation) Name() string {
	return inv.name
}

// Types returns a copy of the type tags.
func (inv *Invocation) Types() []string {
	out := make([]string, len(inv.types))
	copy(out, inv.types)
	return out
}

// Values returns a copy of the values.
func (inv *Invocation) Values() []any {
	out := make([]any, len(inv.values))
	copy(out, inv.values)
	return out
}

// Len returns the number of type tags.
func (inv *Invocation) Len() int {
	return len(inv.types)
}

// WithName returns a new Invocation labelled name.
func (inv *Invocation) WithName(name string) *Invocation {
	clone := inv.clone()
	clone.name = name
	return clone
}

// Validate checks the invocation with the default Encoder.
func (inv *Invocation) Validate() error {
	return defaultEncoder.Validate(inv.types, inv.values)
}

// Encode encodes the invocation with the default Encoder and returns hex.
func (inv *Invocation) Encode() (string, error) {
	return defaultEncoder.Encode(inv.types, inv.values)
}

// clone creates a copy of the Invocation that shares no slices.
func (inv *Invocation) clone() *Invocation {
	clone := NewInvocation(inv.types, inv.values...)
	clone.name = inv.name
	return clone
}
