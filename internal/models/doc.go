// Package models provides the concrete physics models.
//
// Each model implements one of the [physics] extension interfaces:
//
//   - [Rayleigh]: small-particle scattering ([physics.OpticalModel])
//
// Models are registered by name in [Registry] so drivers and the CLI can
// construct them without knowing concrete types. New theories plug in by
// implementing the relevant interface and registering a factory.
package models
