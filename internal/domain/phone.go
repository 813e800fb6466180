package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("domain: invalid phone number")

	// ErrInvalidOTPFormat возвращается, если код не из OTPLength цифр
	ErrInvalidOTPFormat = errors.New("domain: otp must be 6 digits")
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	otpPattern   = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, OTPLength))

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// NormalizePhone убирает разделители и проверяет номер: необязательный "+" и 10-15 цифр
func NormalizePhone(raw string) (string, error) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if !phonePattern.MatchString(phone) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return phone, nil
}

// ValidateOTP проверяет формат одноразового кода
func ValidateOTP(code string) error {
	if !otpPattern.MatchString(code) {
		return ErrInvalidOTPFormat
	}
	return nil
}
