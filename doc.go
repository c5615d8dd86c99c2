// Package jddf validates JSON values against JSON Data Definition Format
// (JDDF) schemas.
//
// A schema is loaded from a generic JSON value with FromJSON, checked for
// cross-schema invariants with Verify, and then used to validate instances
// with Validate. Validate produces the complete, ordered set of
// ValidationErrors for an instance, or a MaxDepthExceeded failure if a
// cyclic ref chain exceeds the configured Limits.
package jddf
