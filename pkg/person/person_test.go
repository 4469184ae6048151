package person

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPerson_Accessors(t *testing.T) {
	p := New("Diana", Female, Single)

	if p.Name() != "Diana" {
		t.Errorf("Name() = %q, want %q", p.Name(), "Diana")
	}
	if p.Gender() != Female {
		t.Errorf("Gender() = %v, want %v", p.Gender(), Female)
	}
	if p.MaritalStatus() != Single {
		t.Errorf("MaritalStatus() = %v, want %v", p.MaritalStatus(), Single)
	}

	want := "Name: Diana, Gender: Female, Marital Status: Single"
	if p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
}

func TestPerson_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Person
		want bool
	}{
		{"identical", New("Mike", Male, Single), New("Mike", Male, Single), true},
		{"different name", New("Mike", Male, Single), New("Bobby", Male, Single), false},
		{"different gender", New("Sam", Male, Single), New("Sam", Female, Single), false},
		{"different status", New("Sam", Male, Single), New("Sam", Male, Married), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("== = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		value fmtStringer
		want  string
	}{
		{Female, "Female"},
		{Male, "Male"},
		{Married, "Married"},
		{Single, "Single"},
		{Gender(7), "Gender(7)"},
		{MaritalStatus(9), "MaritalStatus(9)"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

type fmtStringer interface{ String() string }

func TestParseGender(t *testing.T) {
	tests := []struct {
		in      string
		want    Gender
		wantErr bool
	}{
		{"Female", Female, false},
		{"male", Male, false},
		{" MALE ", Male, false},
		{"f", Female, false},
		{"M", Male, false},
		{"other", Female, true},
		{"", Female, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGender(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGender(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidAttribute) {
					t.Errorf("error should wrap ErrInvalidAttribute, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseGender(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMaritalStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    MaritalStatus
		wantErr bool
	}{
		{"Married", Married, false},
		{"single", Single, false},
		{"  SINGLE", Single, false},
		{"divorced", Married, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMaritalStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMaritalStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMaritalStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnums_YAMLText(t *testing.T) {
	var doc struct {
		Gender Gender        `yaml:"gender"`
		Status MaritalStatus `yaml:"status"`
	}

	if err := yaml.Unmarshal([]byte("gender: male\nstatus: Single\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if doc.Gender != Male || doc.Status != Single {
		t.Errorf("decoded %v/%v, want Male/Single", doc.Gender, doc.Status)
	}

	if err := yaml.Unmarshal([]byte("gender: robot\n"), &doc); err == nil {
		t.Error("expected error for unknown gender")
	}
}

func TestEnums_JSONText(t *testing.T) {
	out, err := json.Marshal(map[string]any{"g": Female, "s": Married})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"g":"Female","s":"Married"}`
	if string(out) != want {
		t.Errorf("json.Marshal() = %s, want %s", out, want)
	}

	if _, err := json.Marshal(Gender(5)); err == nil {
		t.Error("expected error marshaling out-of-range gender")
	}
}
