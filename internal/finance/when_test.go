package finance

import "testing"

func TestWhenWeight(t *testing.T) {
	if got := End.Weight(); got != 0.0 {
		t.Errorf("End.Weight() = %v, want 0", got)
	}
	if got := Begin.Weight(); got != 1.0 {
		t.Errorf("Begin.Weight() = %v, want 1", got)
	}
}

func TestParseWhen(t *testing.T) {
	cases := []struct {
		input string
		want  When
	}{
		{"end", End},
		{"END", End},
		{"0", End},
		{"begin", Begin},
		{"Begin", Begin},
		{"1", Begin},
	}
	for _, tc := range cases {
		got, err := ParseWhen(tc.input)
		if err != nil {
			t.Errorf("ParseWhen(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWhen(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseWhenInvalid(t *testing.T) {
	for _, input := range []string{"", "middle", "2", "start"} {
		if _, err := ParseWhen(input); err == nil {
			t.Errorf("ParseWhen(%q) succeeded, want error", input)
		}
	}
}

func TestWhenString(t *testing.T) {
	if End.String() != "end" {
		t.Errorf("End.String() = %q, want %q", End.String(), "end")
	}
	if Begin.String() != "begin" {
		t.Errorf("Begin.String() = %q, want %q", Begin.String(), "begin")
	}
}
