package staff

import "testing"

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"spaced international form", "+90 532 123 45 67", "5321234567", true},
		{"parenthesized country code", "+(90) 532 123 45 67", "5321234567", true},
		{"country code without plus", "90 532 123 45 67", "5321234567", true},
		{"leading zero", "0532 123 45 67", "5321234567", true},
		{"bare subscriber number", "5321234567", "5321234567", true},
		{"country code plus leading zero", "+90 0532 123 45 67", "5321234567", true},
		{"hyphen separators", "0532-123-45-67", "5321234567", true},
		{"wrong leading digit", "4321234567", "", false},
		{"too short", "532 123 45", "", false},
		{"too long", "53212345678", "", false},
		{"letters rejected", "532 ABC 45 67", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMobile(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("NormalizeMobile(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeMobile_EquivalentFormsAgree(t *testing.T) {
	forms := []string{
		"+90 532 123 45 67",
		"+(90) 5321234567",
		"05321234567",
		"5321234567",
		"90-532-123-45-67",
	}
	for _, form := range forms {
		got, ok := NormalizeMobile(form)
		if !ok || got != "5321234567" {
			t.Errorf("NormalizeMobile(%q) = (%q, %v), want (\"5321234567\", true)", form, got, ok)
		}
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain ascii", "John", true},
		{"accented letters", "Gül", true},
		{"turkish letters", "Oğuz Şahin", true},
		{"apostrophe", "O'Brien", true},
		{"hyphenated", "Anne-Marie", true},
		{"two characters is the floor", "Al", true},
		{"one character too short", "A", false},
		{"digits rejected", "John3", false},
		{"fifty characters is the ceiling", string(make50()), true},
		{"fifty-one characters too long", string(make50()) + "a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func make50() []rune {
	runes := make([]rune, 50)
	for i := range runes {
		runes[i] = 'a'
	}
	return runes
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"iso layout", "2023-01-01", true},
		{"day-first layout", "23/09/2022", true},
		{"nonsense", "not-a-date", false},
		{"out-of-range day", "2023-02-30", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseDate(tt.input); ok != tt.ok {
				t.Errorf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

func TestEnumSets(t *testing.T) {
	if !ValidDepartment("Analytics") || !ValidDepartment("Tech") {
		t.Error("known departments rejected")
	}
	if ValidDepartment("Sales") || ValidDepartment("") {
		t.Error("unknown department accepted")
	}
	if !ValidPosition("Junior") || !ValidPosition("Medior") || !ValidPosition("Senior") {
		t.Error("known positions rejected")
	}
	if ValidPosition("Principal") {
		t.Error("unknown position accepted")
	}
}

func TestNormalizeViewMode(t *testing.T) {
	if got := NormalizeViewMode("table"); got != ViewModeTable {
		t.Errorf("NormalizeViewMode(table) = %q", got)
	}
	if got := NormalizeViewMode("list"); got != ViewModeList {
		t.Errorf("NormalizeViewMode(list) = %q", got)
	}
	if got := NormalizeViewMode("grid"); got != ViewModeList {
		t.Errorf("NormalizeViewMode(grid) = %q, want fallback to list", got)
	}
}
