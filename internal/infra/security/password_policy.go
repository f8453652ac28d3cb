package security

const defaultMinPasswordLength = 6

// DefaultPasswordValidator returns the built-in validator enforcing the
// service password policy. The policy is intentionally a length floor so the
// documented initial admin credential remains settable back after recovery.
func DefaultPasswordValidator() *PasswordValidator {
	return NewPasswordValidator(
		RequireNotEmptyRule(),
		MinLengthRule(defaultMinPasswordLength),
	)
}

// PasswordValidatorWithMinLength builds a validator with a configured length
// floor, falling back to the default when the value is not positive.
func PasswordValidatorWithMinLength(min int) *PasswordValidator {
	if min <= 0 {
		min = defaultMinPasswordLength
	}
	return NewPasswordValidator(
		RequireNotEmptyRule(),
		MinLengthRule(min),
	)
}
