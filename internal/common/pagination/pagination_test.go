package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		query    string
		want     Params
		wantErr  bool
	}{
		{"defaults", "", Params{Page: 1, Limit: 20}, false},
		{"explicit", "?page=3&limit=10", Params{Page: 3, Limit: 10}, false},
		{"zero page", "?page=0", Params{}, true},
		{"negative page", "?page=-1", Params{}, true},
		{"limit over max", "?limit=500", Params{}, true},
		{"non-numeric", "?page=abc", Params{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/admin/leads"+tt.query, nil)
			got, err := ParseQueryParams(r, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseQueryParams() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
	}
	for _, tt := range tests {
		p := Params{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		total      int64
		limit      int
		totalPages int
	}{
		{0, 20, 1},
		{10, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
	}
	for _, tt := range tests {
		m := NewMetadata(tt.total, Params{Page: 1, Limit: tt.limit})
		if m.TotalPages != tt.totalPages {
			t.Errorf("NewMetadata(total=%d, limit=%d).TotalPages = %d, want %d",
				tt.total, tt.limit, m.TotalPages, tt.totalPages)
		}
	}
}
