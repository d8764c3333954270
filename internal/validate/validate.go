package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Result of a single field validation.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result             { return Result{Valid: true} }
func fail(msg string) Result { return Result{Valid: false, Message: msg} }

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
	namePattern       = regexp.MustCompile(`^[\p{L}\s'-]+$`)
)

// Card scheme prefixes accepted at checkout: Amex, Visa, Mastercard, Discover.
var cardPrefixes = []string{"34", "37", "4", "51", "52", "53", "54", "55", "6"}

func Email(email string) Result {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return fail("email is required")
	}
	if !emailPattern.MatchString(trimmed) {
		return fail("invalid email format")
	}
	if len(trimmed) > 255 {
		return fail("email is too long")
	}
	return ok()
}

func Phone(phone string) Result {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return fail("phone is required")
	}
	digits := nonDigitPattern.ReplaceAllString(trimmed, "")
	if len(digits) < 10 || len(digits) > 15 {
		return fail("phone must contain 10-15 digits")
	}
	if !phonePattern.MatchString(trimmed) {
		return fail("invalid phone format")
	}
	return ok()
}

func Name(name string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fail("name is required")
	}
	if len([]rune(trimmed)) < 2 {
		return fail("name must be at least 2 characters")
	}
	if len([]rune(trimmed)) > 100 {
		return fail("name must not exceed 100 characters")
	}
	if !namePattern.MatchString(trimmed) {
		return fail("name may only contain letters, spaces, apostrophes and hyphens")
	}
	return ok()
}

func Address(address string) Result {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return fail("address is required")
	}
	if len([]rune(trimmed)) < 5 {
		return fail("address must be at least 5 characters")
	}
	if len([]rune(trimmed)) > 200 {
		return fail("address must not exceed 200 characters")
	}
	return ok()
}

const minPasswordLen = 6

func Password(password string) Result {
	if password == "" {
		return fail("password is required")
	}
	if len(password) < minPasswordLen {
		return fail(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if len(password) > 128 {
		return fail("password is too long")
	}
	return ok()
}

// CardNumber checks digit count, the Luhn checksum and the scheme prefix.
// Separators and spaces are stripped before checking.
func CardNumber(cardNumber string) Result {
	digits := nonDigitPattern.ReplaceAllString(cardNumber, "")
	if digits == "" {
		return fail("card number is required")
	}
	if !cardNumberPattern.MatchString(digits) {
		return fail("invalid card number")
	}
	if !luhnValid(digits) {
		return fail("invalid card number")
	}

	supported := false
	for _, prefix := range cardPrefixes {
		if strings.HasPrefix(digits, prefix) {
			supported = true
			break
		}
	}
	if !supported {
		return fail("unsupported card scheme")
	}
	return ok()
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CardExpiry expects MM/YY and rejects expired dates and dates more than
// ten years out.
func CardExpiry(expiry string) Result {
	return cardExpiryAt(expiry, time.Now())
}

func cardExpiryAt(expiry string, now time.Time) Result {
	if expiry == "" {
		return fail("expiry is required")
	}
	if !cardExpiryPattern.MatchString(expiry) {
		return fail("invalid expiry format (MM/YY)")
	}

	parts := strings.Split(expiry, "/")
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if year < currentYear || (year == currentYear && month < currentMonth) {
		return fail("card has expired")
	}
	if year > currentYear+10 {
		return fail("invalid expiry date")
	}
	return ok()
}

func CVV(cvv string) Result {
	if cvv == "" {
		return fail("cvv is required")
	}
	if !cvvPattern.MatchString(cvv) {
		return fail("cvv must contain 3-4 digits")
	}
	return ok()
}

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects per-field failures across a request body.
type Errors struct {
	fields []FieldError
}

func (e *Errors) Check(field string, r Result) {
	if !r.Valid {
		e.fields = append(e.fields, FieldError{Field: field, Message: r.Message})
	}
}

func (e *Errors) Add(field, message string) {
	e.fields = append(e.fields, FieldError{Field: field, Message: message})
}

func (e *Errors) HasErrors() bool {
	return len(e.fields) > 0
}

func (e *Errors) Fields() []FieldError {
	return e.fields
}

func (e *Errors) Error() string {
	if len(e.fields) == 0 {
		return "validation error"
	}
	parts := make([]string, len(e.fields))
	for i, f := range e.fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation error: " + strings.Join(parts, "; ")
}
