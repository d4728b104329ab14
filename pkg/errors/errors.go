package errors

// Errors reported to the operator are divided into a small number of
// categories, distinguished by what the operator has to do about them;
// i.e., is this error:
//  - a parameter that needs supplying (via environment or prompt)?
//  - a precondition on the filesystem that a previous run left unmet?
//  - an external command that failed and should be inspected?
type Error struct {
	Type Type
	// a message that can be printed out for the operator, with enough
	// context (parameter, command, path) to re-run safely
	Help string
	// the underlying error that can be e.g., logged for developers to look at
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

type Type string

const (
	// A required parameter resolved to nothing; the Help text names the
	// parameter and the environment variable that can supply it.
	MissingParameter Type = "missing-parameter"
	// The install target exists and is not empty.
	InvalidTarget Type = "invalid-target"
	// A delegated subprocess exited nonzero.
	ExternalCommand Type = "external-command"
	// The dispatcher received a token outside the closed operation set.
	UnknownOperation Type = "unknown-operation"
	// Rendering or writing a settings artifact failed.
	Materialization Type = "materialization"
	// The operation was well-formed, but some other user-supplied input
	// can't work as given (e.g., an unparseable boolean).
	User Type = "user"
	// Something went wrong that no amount of operator action explains.
	Internal Type = "internal"
)

// Is reports whether err is an *Error of the given type.
func Is(err error, t Type) bool {
	if err, ok := err.(*Error); ok && err.Type == t {
		return true
	}
	return false
}

// CoverAllError wraps errors that escaped without a specific category.
func CoverAllError(err error) *Error {
	return &Error{
		Type: Internal,
		Err:  err,
		Help: `There is no specific help for the error above. Earlier steps of the
operation may have completed; their effects are left in place for
inspection. Once the cause is fixed, the operation is safe to run again.
`,
	}
}
