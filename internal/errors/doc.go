// Package errors provides the structured error type used across monster-api.
//
// Every layer returns *Error values carrying a Code, a user facing message,
// an optional cause and free-form metadata:
//
//	err := errors.NotFoundf("technique %s not found", slug).
//	    WithMeta("slug", slug)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrapf(err, "failed to load monster %s", id)
//	}
//
// Field validation is accumulated with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("slug", t.Slug, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert at the transport boundary with ToGRPCError; clients turn
// status errors back with FromGRPCError. Metadata crosses the wire as an
// errdetails.ErrorInfo detail.
//
// Layer guidelines:
//   - Repositories return NotFound/InvalidArgument and wrap storage failures.
//   - Orchestrators validate input and report FailedPrecondition/OutOfRange
//     for state that does not allow the operation.
//   - Handlers only convert.
package errors
