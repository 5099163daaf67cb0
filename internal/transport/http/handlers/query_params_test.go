package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestRequiredQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/search?origin=+Москва+&empty=++", nil)

	if got, ok := requiredQuery(r, "origin"); !ok || got != "Москва" {
		t.Fatalf("expected trimmed value, got %q ok=%v", got, ok)
	}
	if _, ok := requiredQuery(r, "empty"); ok {
		t.Fatal("whitespace-only value must count as absent")
	}
	if _, ok := requiredQuery(r, "missing"); ok {
		t.Fatal("missing value must count as absent")
	}
}

func TestOptionalQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/search?return_date=30.11.2025&blank=", nil)

	if got := optionalQuery(r, "return_date"); got == nil || *got != "30.11.2025" {
		t.Fatalf("expected pointer to value, got %v", got)
	}
	if got := optionalQuery(r, "blank"); got != nil {
		t.Fatalf("expected nil for blank value, got %q", *got)
	}
	if got := optionalQuery(r, "missing"); got != nil {
		t.Fatalf("expected nil for missing value, got %q", *got)
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "present", header: "Bearer tok-1", want: "tok-1", ok: true},
		{name: "padded", header: "  Bearer tok-1  ", want: "tok-1", ok: true},
		{name: "missing header", header: "", ok: false},
		{name: "empty credential", header: "Bearer   ", ok: false},
		{name: "wrong scheme", header: "Basic dXNlcg==", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			got, ok := bearerToken(r)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected token %q, got %q", tc.want, got)
			}
		})
	}
}
