// Package errors provides the error taxonomy for the targeting service.
//
// Every failure surfaced by the query engine is a precondition failure reported
// synchronously to the caller. The package gives those failures a code, a
// message and metadata naming the offending input:
//   - Structured errors with codes, messages, and metadata
//   - Field-level errors for option and geometry validation
//   - Bidirectional conversion to gRPC status errors
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidField("tolerance", "must be greater than 0")
//	err := errors.NotFoundf("scene %s not found", sceneID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load scene")
//	}
//
// # Validation Errors
//
// Several fields can be checked before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("tolerance", opts.Tolerance, vb)
//	errors.ValidateEnum("collision_method", string(opts.Method), methods, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Codes
//
// The codes in use are:
//   - InvalidArgument: malformed option, cross-scene query, unsupported shape kind
//   - NotFound: unknown scene, token or template id
//   - Internal: storage or transport failure
//   - Unavailable: backing store unreachable
//   - Unimplemented: rpc not served
//
// A zero-area ratio denominator is not an error: the engine defines the ratio
// as 0 and never reports it.
package errors
