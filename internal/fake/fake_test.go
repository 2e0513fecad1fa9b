package fake

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
)

func newTestFaker() *Faker {
	return New(rand.New(rand.NewSource(42)))
}

func TestCPF(t *testing.T) {
	t.Parallel()

	f := newTestFaker()
	format := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	for i := 0; i < 100; i++ {
		cpf := f.CPF()
		if !format.MatchString(cpf) {
			t.Fatalf("CPF %q does not match the xxx.xxx.xxx-xx format", cpf)
		}

		digits := make([]int, 0, 11)
		for _, r := range cpf {
			if r >= '0' && r <= '9' {
				digits = append(digits, int(r-'0'))
			}
		}
		if got := cpfCheckDigit(digits[:9]); got != digits[9] {
			t.Fatalf("CPF %q: first check digit = %d, want %d", cpf, digits[9], got)
		}
		if got := cpfCheckDigit(digits[:10]); got != digits[10] {
			t.Fatalf("CPF %q: second check digit = %d, want %d", cpf, digits[10], got)
		}
	}
}

func TestPhoneNumber(t *testing.T) {
	t.Parallel()

	f := newTestFaker()
	format := regexp.MustCompile(`^\(\d{2}\) 9\d{4}-\d{4}$`)

	for i := 0; i < 100; i++ {
		if phone := f.PhoneNumber(); !format.MatchString(phone) {
			t.Fatalf("phone %q does not match the (DD) 9XXXX-XXXX format", phone)
		}
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	f := newTestFaker()
	for i := 0; i < 100; i++ {
		email := f.Email()
		if !strings.Contains(email, "@") {
			t.Fatalf("email %q has no @", email)
		}
		for _, r := range email {
			if r > 127 {
				t.Fatalf("email %q contains non-ASCII rune %q", email, r)
			}
		}
	}
}

func TestDateOfBirth(t *testing.T) {
	t.Parallel()

	f := newTestFaker()
	now := time.Now()

	for i := 0; i < 100; i++ {
		dob := f.DateOfBirth(18, 75)
		age := now.Sub(dob).Hours() / 24 / 365
		if age < 17.9 || age > 75.1 {
			t.Fatalf("birth date %s implies age %.1f, want within [18, 75]", dob, age)
		}
	}
}

func TestNameDrawsFromPools(t *testing.T) {
	t.Parallel()

	f := newTestFaker()
	name := f.Name()
	parts := strings.SplitN(name, " ", 2)
	if len(parts) != 2 {
		t.Fatalf("name %q is not first + last", name)
	}
}
