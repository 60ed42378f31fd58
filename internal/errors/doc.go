// Package errors provides coded errors for the statblock transcoder.
//
// Every failure the transcoder can report carries one of a small set of codes:
//   - IO: the input file is missing or unreadable
//   - Parse: the input is not valid JSON
//   - Schema: the input is valid JSON of the wrong shape
//   - InvalidArgument: bad command line usage or an unusable option value
//   - Canceled: the context was canceled before work started
//   - Internal: anything else
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.IO("failed to read creature file")
//	err := errors.Schemaf("field %s must be a string", key)
//
// Adding metadata:
//
//	err := errors.IO("failed to read creature file").
//	    WithMeta("path", path)
//
// Wrapping errors:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.WrapWithCode(err, errors.CodeIO, "failed to read creature file")
//	}
//
// # Error Checking
//
//	if errors.IsSchema(err) {
//	    // report the offending fields
//	}
//	os.Exit(errors.GetCode(err).ExitCode())
//
// # Validation Errors
//
// Field problems are collected with a builder so that a single run reports
// all of them:
//
//	vb := errors.NewValidationBuilderFor(errors.CodeSchema)
//	vb.RequiredField("Name")
//	vb.InvalidField("AC.Value", "expected unsigned integer")
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
