package curves

// Error codes for curve mutations.
const (
	ErrCodeNotFound       = "WELLLOG_CURVE_NOT_FOUND"
	ErrCodeProtected      = "WELLLOG_CURVE_PROTECTED"
	ErrCodeCollision      = "WELLLOG_NAME_COLLISION"
	ErrCodeInvalidOperand = "WELLLOG_INVALID_OPERAND"
	ErrCodeInvalidName    = "WELLLOG_INVALID_NAME"
)

// ErrorCode extracts the mutation error code from an error. Returns "" for
// nil or for errors that do not carry a code.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	// go-errors format: [CODE]: Message
	s := err.Error()
	if len(s) > 3 && s[0] == '[' {
		for i := 1; i < len(s); i++ {
			if s[i] == ']' {
				return s[1:i]
			}
		}
	}
	return ""
}
