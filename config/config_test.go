package config

import "testing"

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("BLOG_API_TEST_KEY", "value")

	c := New()
	if c["BLOG_API_TEST_KEY"] != "value" {
		t.Errorf("New() did not pick up the environment, got %q", c["BLOG_API_TEST_KEY"])
	}
}

func TestGetters_Defaults(t *testing.T) {
	c := map[string]string{
		"PORT":           "9090",
		"RATE_LIMIT_RPS": "5",
		"SEED_DB":        "true",
		"BROKEN_INT":     "not-a-number",
		"BROKEN_BOOL":    "not-a-bool",
	}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString = %q, want 9090", got)
	}
	if got := GetString(c, "MISSING", "8080"); got != "8080" {
		t.Errorf("GetString default = %q, want 8080", got)
	}
	if got := GetInt(c, "RATE_LIMIT_RPS", 20); got != 5 {
		t.Errorf("GetInt = %d, want 5", got)
	}
	if got := GetInt(c, "BROKEN_INT", 20); got != 20 {
		t.Errorf("GetInt on unparseable = %d, want default", got)
	}
	if !GetBool(c, "SEED_DB", false) {
		t.Error("GetBool should parse true")
	}
	if GetBool(c, "BROKEN_BOOL", false) {
		t.Error("GetBool on unparseable should fall back to default")
	}
	if GetInt(nil, "ANY", 7) != 7 || GetString(nil, "ANY", "x") != "x" || GetBool(nil, "ANY", true) != true {
		t.Error("nil config must return defaults")
	}
}
