// Package fake fabricates pt-BR personal and address data for the seeder.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Faker draws from fixed pt-BR word pools using a caller-owned random source.
type Faker struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Faker {
	return &Faker{rng: rng}
}

func (f *Faker) pick(pool []string) string {
	return pool[f.rng.Intn(len(pool))]
}

func (f *Faker) Name() string {
	return f.pick(firstNames) + " " + f.pick(lastNames)
}

func (f *Faker) Email() string {
	first := strings.ToLower(f.pick(firstNames))
	last := strings.ToLower(f.pick(lastNames))
	first = removeAccents(first)
	last = removeAccents(last)
	return fmt.Sprintf("%s.%s%d@%s", first, last, f.rng.Intn(1000), f.pick(emailDomains))
}

// PhoneNumber returns a mobile number in the (DD) 9XXXX-XXXX format.
func (f *Faker) PhoneNumber() string {
	ddd := 11 + f.rng.Intn(78)
	return fmt.Sprintf("(%02d) 9%04d-%04d", ddd, f.rng.Intn(10000), f.rng.Intn(10000))
}

// CPF returns a formatted CPF with valid check digits.
func (f *Faker) CPF() string {
	var d [11]int
	for i := 0; i < 9; i++ {
		d[i] = f.rng.Intn(10)
	}
	d[9] = cpfCheckDigit(d[:9])
	d[10] = cpfCheckDigit(d[:10])
	return fmt.Sprintf("%d%d%d.%d%d%d.%d%d%d-%d%d",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10])
}

// cpfCheckDigit computes the next verification digit for a partial CPF.
func cpfCheckDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func (f *Faker) City() string {
	return f.pick(cityNames)
}

func (f *Faker) Neighborhood() string {
	return f.pick(neighborhoods)
}

func (f *Faker) StateAbbrev() string {
	return f.pick(stateAbbrevs)
}

func (f *Faker) StreetName() string {
	return f.pick(streetTypes) + " " + f.pick(streetNames)
}

func (f *Faker) Company() string {
	return f.pick(companyWords) + " & " + f.pick(companyWords) + " " + f.pick(companySuffixes)
}

// PostalCode returns a CEP in the 00000-000 format.
func (f *Faker) PostalCode() string {
	return fmt.Sprintf("%05d-%03d", f.rng.Intn(100000), f.rng.Intn(1000))
}

// DateOfBirth returns a birth date for someone between minAge and maxAge years old.
func (f *Faker) DateOfBirth(minAge, maxAge int) time.Time {
	ageDays := minAge*365 + f.rng.Intn((maxAge-minAge)*365)
	t := time.Now().AddDate(0, 0, -ageDays)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "â", "a", "ã", "a", "à", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

func removeAccents(s string) string {
	return accentReplacer.Replace(s)
}
