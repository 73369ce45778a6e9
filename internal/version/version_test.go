package version

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "v1.2.3", want: "1.2.3"},
		{in: "1.2.3", want: "1.2.3"},
		{in: " v0.4.0 ", want: "0.4.0"},
		{in: "", wantErr: true},
		{in: "1.2", wantErr: true},
		{in: "1.2.3.4", wantErr: true},
		{in: "v1.2.x", wantErr: true},
		{in: "v1..3", wantErr: true},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Normalize(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Normalize(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsDev(t *testing.T) {
	for _, raw := range []string{"", "dev", "DEV", "  dev "} {
		if !IsDev(raw) {
			t.Errorf("IsDev(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"1.2.3", "v1.2.3"} {
		if IsDev(raw) {
			t.Errorf("IsDev(%q) = true, want false", raw)
		}
	}
}
