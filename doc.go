package goprior

// Package goprior provides:
//
// - Immutable distribution descriptors (Dist) built by one factory per shape
// - Credible-interval inference for normal and lognormal descriptors
// - A stable error model via Issues (JSON Pointer, code, message) with error
//   kinds usable through errors.Is (ErrRangeOrder, ErrParameterConflict,
//   ErrDomain, ErrValidation)
//
// Design policy:
// - Keep descriptors and factories in the root package; put the weight
//   normalizer under internal/.
// - Model documents (YAML/JSON) live under model/, the CLI under cmd/goprior.
// - Descriptors are never sampled, serialized or mutated here.
//
// Typical usage:
//
//  d, err := goprior.To(1, 10)                         // lognorm(mean=1.15, sd=0.7)
//  n, err := goprior.Norm(goprior.Mean(1), goprior.SD(2))
//  m, err := goprior.Mixture([]goprior.Dist{a, b}, goprior.Weights(0.1, 0.9))
//  if errors.Is(err, goprior.ErrParameterConflict) { ... }
//
