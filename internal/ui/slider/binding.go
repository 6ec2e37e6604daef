package slider

// Binding is the externally owned value a slider is bound to.
//
// The slider reads it to render and writes it only through SetValue. The host
// is responsible for propagating writes to any other state, and for calling
// Render when it changes the value itself.
type Binding interface {
	Get() float64
	Set(v float64)
}

// Float is a Binding holding its value in memory.
type Float struct {
	v float64
}

// NewFloat creates a Float binding with an initial value.
func NewFloat(v float64) *Float {
	return &Float{v: v}
}

// Get returns the current value.
func (f *Float) Get() float64 { return f.v }

// Set replaces the current value.
func (f *Float) Set(v float64) { f.v = v }

// Funcs adapts a getter and a setter to a Binding.
type Funcs struct {
	GetFunc func() float64
	SetFunc func(float64)
}

// Get calls GetFunc.
func (f Funcs) Get() float64 { return f.GetFunc() }

// Set calls SetFunc.
func (f Funcs) Set(v float64) { f.SetFunc(v) }
