package physics

import "fmt"

// RefractiveIndex is a complex refractive index n + ik. N is the phase
// velocity factor, K the extinction coefficient. K >= 0 for physical
// materials; the type itself does not enforce it, validation does.
type RefractiveIndex struct {
	N float64 `json:"n" yaml:"n"`
	K float64 `json:"k" yaml:"k"`
}

// Complex returns n + ik as a complex128.
func (ri RefractiveIndex) Complex() complex128 {
	return complex(ri.N, ri.K)
}

// Permittivity returns the complex relative permittivity ε = n².
func (ri RefractiveIndex) Permittivity() complex128 {
	n := ri.Complex()
	return n * n
}

func (ri RefractiveIndex) String() string {
	return fmt.Sprintf("%.4f + %.4fi", ri.N, ri.K)
}
