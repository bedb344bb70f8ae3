// Package physics defines the model contracts and result types shared by
// every physical theory in the calculator.
//
// The package provides:
//
//   - [PhysicsModel]: base contract (name, validation, advisory warnings)
//   - [OpticalModel], [ThermalModel], [ElectronicModel]: domain extensions
//   - [OpticalResult], [ThermalResult], [ElectronicResult]: plain result data
//   - [RefractiveIndex]: complex refractive index n + ik
//   - [ValidationError], [CalculationError]: the two-tier error taxonomy
//
// # Extensibility
//
// A new theory (full Mie series, effective-medium thermal model, Brus
// electronic model) is added by implementing the relevant extension
// interface; callers and sweep drivers never change:
//
//	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 0.5, K: 2.5}, 1.33)
//	if err := m.Validate(); err != nil { ... }
//	result, err := m.Calculate()
//
// # Thread Safety
//
// Models are immutable value objects once constructed; Calculate is pure
// and safe to call from any number of goroutines. The [Parallelizable]
// marker carries sweep sharding hints for callers.
package physics
