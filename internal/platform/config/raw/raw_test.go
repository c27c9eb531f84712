package raw

import (
	"testing"
)

// the logger bootstraps from LOG_* through this reader before anything else is configured
func TestGet_LoggerBootstrapKeys(t *testing.T) {
	t.Setenv("LOG_LEVEL", " debug ")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PKGSTATS_API_LOG_SERVICE", " pkgstats-api ")

	logCfg := New().Prefix("LOG_")
	apiLog := New().Prefix("PKGSTATS_").Prefix("API_").Prefix("LOG_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "trimmed level", conf: logCfg, key: "LEVEL", def: "info", want: "debug"},
		{name: "format", conf: logCfg, key: "FORMAT", def: "console", want: "json"},
		{name: "unset service keeps default", conf: logCfg, key: "SERVICE", def: "pkgstats", want: "pkgstats"},
		{name: "nested prefixes compose", conf: apiLog, key: "SERVICE", def: "", want: "pkgstats-api"},
		{name: "nested miss", conf: apiLog, key: "LEVEL", def: "warn", want: "warn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetBool_Caller(t *testing.T) {
	c := New().Prefix("LOG_")
	for _, tt := range []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{" YES ", false, true},
		{"false", true, false},
		{"0", true, false},
		{"on", true, false}, // only 1|true|yes are truthy
		{"", true, true},
		{"", false, false},
	} {
		t.Setenv("LOG_CALLER", tt.val)
		if got := c.GetBool("CALLER", tt.def); got != tt.want {
			t.Fatalf("LOG_CALLER=%q def %v: got %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}

func TestGetInt_SampleEvery(t *testing.T) {
	c := New().Prefix("LOG_")
	for _, tt := range []struct {
		val  string
		def  int
		want int
	}{
		{"5", 0, 5},
		{" 2 ", 0, 2},
		{"0", 3, 0},
		{"-1", 3, 3},
		{"every", 4, 4},
		{"", 1, 1},
	} {
		t.Setenv("LOG_SAMPLE_EVERY", tt.val)
		if got := c.GetInt("SAMPLE_EVERY", tt.def); got != tt.want {
			t.Fatalf("LOG_SAMPLE_EVERY=%q def %d: got %d, want %d", tt.val, tt.def, got, tt.want)
		}
	}
}
