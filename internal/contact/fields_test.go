package contact

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   Fields
		want FieldErrors
	}{
		{"complete", Fields{Name: "Sara", Email: "sara@example.com", Message: "hi"}, nil},
		{"all empty", Fields{}, FieldErrors{FieldName: ErrFieldRequired, FieldEmail: ErrFieldRequired, FieldMessage: ErrFieldRequired}},
		{"whitespace message", Fields{Name: "Sara", Email: "sara@example.com", Message: " \n\t"}, FieldErrors{FieldMessage: ErrFieldRequired}},
		{"bad email", Fields{Name: "Sara", Email: "sara at example", Message: "hi"}, FieldErrors{FieldEmail: ErrFieldInvalidEmail}},
		{"display name email", Fields{Name: "Sara", Email: "Sara <sara@example.com>", Message: "hi"}, FieldErrors{FieldEmail: ErrFieldInvalidEmail}},
		{"dotless domain", Fields{Name: "Sara", Email: "sara@localhost", Message: "hi"}, nil},
		{"consecutive dots", Fields{Name: "Sara", Email: "a..b@example.com", Message: "hi"}, nil},
		{"leading dot", Fields{Name: "Sara", Email: ".a@example.com", Message: "hi"}, nil},
		{"missing domain", Fields{Name: "Sara", Email: "a@", Message: "hi"}, FieldErrors{FieldEmail: ErrFieldInvalidEmail}},
		{"missing local part", Fields{Name: "Sara", Email: "@example.com", Message: "hi"}, FieldErrors{FieldEmail: ErrFieldInvalidEmail}},
		{"space in local part", Fields{Name: "Sara", Email: "a b@example.com", Message: "hi"}, FieldErrors{FieldEmail: ErrFieldInvalidEmail}},
		{"label starts with hyphen", Fields{Name: "Sara", Email: "a@-b.com", Message: "hi"}, FieldErrors{FieldEmail: ErrFieldInvalidEmail}},
	}
	for _, tc := range cases {
		got := Validate(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		for k, v := range tc.want {
			if got[k] != v {
				t.Fatalf("%s: field %s got %q, want %q", tc.name, k, got[k], v)
			}
		}
	}
}

func TestNormalizeTrimsSingleLineFields(t *testing.T) {
	got := Fields{Name: "  Sara ", Email: " sara@example.com\n", Message: "  keep  "}.Normalize()
	if got.Name != "Sara" || got.Email != "sara@example.com" || got.Message != "  keep  " {
		t.Fatalf("unexpected normalize result: %+v", got)
	}
}
