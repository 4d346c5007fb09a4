package raw

import "testing"

func TestGetTrimsAndDefaults(t *testing.T) {
	c := New().Prefix("RAWT_")
	t.Setenv("RAWT_NAME", "  arc  ")
	if got := c.Get("NAME", "x"); got != "arc" {
		t.Fatalf("Get = %q, want %q", got, "arc")
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q, want %q", got, "fallback")
	}
}

func TestPrefixNesting(t *testing.T) {
	c := New().Prefix("A_").Prefix("B_")
	t.Setenv("A_B_KEY", "v")
	if got := c.Get("KEY", ""); got != "v" {
		t.Fatalf("nested prefix lookup failed, got %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAWT_")
	for _, tc := range []struct {
		val  string
		want bool
	}{
		{"1", true}, {"true", true}, {"YES", true},
		{"0", false}, {"no", false}, {"junk", false},
	} {
		t.Setenv("RAWT_FLAG", tc.val)
		if got := c.GetBool("FLAG", !tc.want); got != tc.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
	if !c.GetBool("ABSENT", true) {
		t.Fatalf("GetBool default not honored")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWT_")
	t.Setenv("RAWT_N", "42")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}
	t.Setenv("RAWT_N", "-3")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt on negative = %d, want default 7", got)
	}
	t.Setenv("RAWT_N", "x1")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt on junk = %d, want default 7", got)
	}
}
