package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeIO              Code = "IO"
	CodeParse           Code = "PARSE"
	CodeSchema          Code = "SCHEMA"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeCanceled        Code = "CANCELED"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status for the code.
// Every failure code maps to a distinct non-zero status.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 2
	case CodeIO:
		return 3
	case CodeParse:
		return 4
	case CodeSchema:
		return 5
	case CodeCanceled:
		return 6
	default:
		return 1
	}
}
