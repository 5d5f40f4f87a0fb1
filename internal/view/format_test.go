package view

import "testing"

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"Madonna", "M"},
		{"", ""},
		{"jane doe", "JD"},
		{"Anna Maria Luisa Medici", "AM"}, // never more than two
		{"  spaced   out  ", "SO"},
	}
	for _, c := range cases {
		if got := Initials(c.name); got != c.want {
			t.Errorf("Initials(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
