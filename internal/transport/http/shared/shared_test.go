package shared

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		zero  bool
		fails bool
	}{
		{name: "plain date", input: "2026-04-06", want: "2026-04-06"},
		{name: "padded", input: "  2026-04-06 ", want: "2026-04-06"},
		{name: "rfc3339", input: "2026-04-06T08:00:00Z", want: "2026-04-06"},
		{name: "empty is zero", input: "", zero: true},
		{name: "blank is zero", input: "   ", zero: true},
		{name: "garbage", input: "04/06/2026", fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.fails {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			if tc.zero {
				if !got.IsZero() {
					t.Fatalf("expected zero time for %q, got %v", tc.input, got)
				}
				return
			}
			if got.Format(time.DateOnly) != tc.want {
				t.Fatalf("parse %q: expected %s, got %s", tc.input, tc.want, got.Format(time.DateOnly))
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantLimit: 50},
		{name: "explicit", query: "?limit=25&offset=10", wantLimit: 25, wantOffset: 10},
		{name: "capped", query: "?limit=5000", wantLimit: 200},
		{name: "garbage ignored", query: "?limit=abc&offset=-3", wantLimit: 50},
		{name: "zero limit ignored", query: "?limit=0", wantLimit: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/"+tc.query, nil)
			page := ParsePagination(r, 50, 200)
			if page.Limit != tc.wantLimit || page.Offset != tc.wantOffset {
				t.Fatalf("%q: got limit=%d offset=%d, want %d/%d",
					tc.query, page.Limit, page.Offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
