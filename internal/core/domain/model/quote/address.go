package quote

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteAddress is the sentinel error for addresses missing one or
// more required fields.
var ErrIncompleteAddress = errors.New("address is incomplete")

// IncompleteAddressError lists the missing address fields so the storefront
// can highlight them.
type IncompleteAddressError struct {
	Missing []string
}

func (e *IncompleteAddressError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrIncompleteAddress, strings.Join(e.Missing, ", "))
}

func (e *IncompleteAddressError) Unwrap() error {
	return ErrIncompleteAddress
}

// Address holds the raw delivery-address fields used for quoting. All five
// fields are required; quoting an incomplete address is rejected before any
// external call is made.
type Address struct {
	Zip          string
	Street       string
	Number       string
	Neighborhood string
	City         string
}

// NewAddress creates an Address, rejecting empty fields.
func NewAddress(zip, street, number, neighborhood, city string) (Address, error) {
	a := Address{
		Zip:          strings.TrimSpace(zip),
		Street:       strings.TrimSpace(street),
		Number:       strings.TrimSpace(number),
		Neighborhood: strings.TrimSpace(neighborhood),
		City:         strings.TrimSpace(city),
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"zip", a.Zip},
		{"street", a.Street},
		{"number", a.Number},
		{"neighborhood", a.Neighborhood},
		{"city", a.City},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return Address{}, &IncompleteAddressError{Missing: missing}
	}

	return a, nil
}

// Text returns the display/geocoding form of the address:
// "street, number - neighborhood, city, zip".
func (a Address) Text() string {
	return fmt.Sprintf("%s, %s - %s, %s, %s", a.Street, a.Number, a.Neighborhood, a.City, a.Zip)
}

// Hash returns the deterministic cache key for the address: a sha256 hex
// digest over the lower-cased, whitespace-collapsed fields. Field values are
// joined with a separator so that two addresses differing only in one field
// never collapse to the same key.
func (a Address) Hash() string {
	canonical := strings.Join([]string{
		normalizeField(a.Zip),
		normalizeField(a.Street),
		normalizeField(a.Number),
		normalizeField(a.Neighborhood),
		normalizeField(a.City),
	}, "|")

	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// normalizeField lower-cases and collapses all interior whitespace runs to a
// single space, making the hash stable under formatting variation of the
// same logical address.
func normalizeField(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
