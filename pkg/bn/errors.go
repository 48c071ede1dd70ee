package bn

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidArgument is returned when an Int is constructed from a value
	// of an unsupported type or from malformed hex.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrInvalidModulus is returned when a modulus is even where an odd one
	// is required, or is not positive.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrNotCoprime is returned when a modular inverse is requested for a
	// value that shares a factor with the modulus.
	ErrNotCoprime = ErrorKind("ErrNotCoprime")

	// ErrMontgomerySetup is returned when the Montgomery pair R', N' with
	// R*R' - N*N' = 1 cannot be established for a modulus.
	ErrMontgomerySetup = ErrorKind("ErrMontgomerySetup")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to big number arithmetic. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
