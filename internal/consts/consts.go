package consts

const (
	DefaultZ0      = 50.0 // Default reference impedance (ohm)
	DefaultFreqMul = 1e9  // Default Touchstone frequency unit (GHz)
)
