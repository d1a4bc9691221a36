package pathutil

import (
	"errors"
	"testing"
)

func TestExtractSlug(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantErr bool
	}{
		{"simple slug", "/posts/five-mobility-drills", "/posts/", "five-mobility-drills", false},
		{"trailing slash", "/posts/protein-myths/", "/posts/", "protein-myths", false},
		{"single word", "/posts/deadlifts", "/posts/", "deadlifts", false},
		{"empty slug", "/posts/", "/posts/", "", true},
		{"nested path", "/posts/a/b", "/posts/", "", true},
		{"uppercase rejected", "/posts/NotASlug", "/posts/", "", true},
		{"leading hyphen rejected", "/posts/-bad", "/posts/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSlug(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSlug) {
					t.Fatalf("ExtractSlug() error = %v, want ErrInvalidSlug", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractSlug() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractSlug() = %q, want %q", got, tt.want)
			}
		})
	}
}
