package person

import "fmt"

// Gender is the gender attribute of a Person.
type Gender uint8

const (
	Female Gender = iota
	Male
)

// String returns "Female" or "Male".
func (g Gender) String() string {
	switch g {
	case Female:
		return "Female"
	case Male:
		return "Male"
	default:
		return fmt.Sprintf("Gender(%d)", uint8(g))
	}
}

// IsValid reports whether g is one of the declared genders.
func (g Gender) IsValid() bool {
	return g == Female || g == Male
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, &ParseError{Attribute: "gender", Value: g.String()}
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MaritalStatus is the marital status attribute of a Person.
type MaritalStatus uint8

const (
	Married MaritalStatus = iota
	Single
)

// String returns "Married" or "Single".
func (s MaritalStatus) String() string {
	switch s {
	case Married:
		return "Married"
	case Single:
		return "Single"
	default:
		return fmt.Sprintf("MaritalStatus(%d)", uint8(s))
	}
}

// IsValid reports whether s is one of the declared statuses.
func (s MaritalStatus) IsValid() bool {
	return s == Married || s == Single
}

// MarshalText implements encoding.TextMarshaler.
func (s MaritalStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &ParseError{Attribute: "marital_status", Value: s.String()}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MaritalStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseMaritalStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Person is an immutable record. The zero value is a nameless married female
// and is only useful as a placeholder.
type Person struct {
	name          string
	gender        Gender
	maritalStatus MaritalStatus
}

// New creates a Person.
func New(name string, gender Gender, status MaritalStatus) Person {
	return Person{
		name:          name,
		gender:        gender,
		maritalStatus: status,
	}
}

// Name returns the person's name.
func (p Person) Name() string {
	return p.name
}

// Gender returns the person's gender.
func (p Person) Gender() Gender {
	return p.gender
}

// MaritalStatus returns the person's marital status.
func (p Person) MaritalStatus() MaritalStatus {
	return p.maritalStatus
}

// Equal reports whether p and other have the same name, gender and marital status.
func (p Person) Equal(other Person) bool {
	return p == other
}

// String renders the person as a single human-readable line.
func (p Person) String() string {
	return fmt.Sprintf("Name: %s, Gender: %s, Marital Status: %s", p.name, p.gender, p.maritalStatus)
}
