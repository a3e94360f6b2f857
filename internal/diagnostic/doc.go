// Package diagnostic provides the structured, coded reports the builder
// generator emits instead of a builder when synthesis of a target cannot
// complete.
//
// Codes are stable identifiers for tooling integration:
//   - NUB0000 UnexpectedFailure: an internal failure while synthesizing one target
//   - NUB0001 HostVersionTooLow: the module's go directive is below the minimum
//   - NUB0002 NoBuilderFor: a list element type has no companion builder
//   - NUB0003 NoDefaultValue: a property has no derivable default value
package diagnostic
