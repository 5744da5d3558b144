package pagenames_test

import (
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/system/pagenames"
)

func TestLoad(t *testing.T) {
	if err := pagenames.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	all, err := pagenames.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 23 {
		t.Errorf("pages: got %d, want 23", len(all))
	}
	seen := map[string]bool{}
	for _, p := range all {
		if p.Code == "" || p.Label == "" {
			t.Errorf("incomplete entry %+v", p)
		}
		if seen[p.Code] {
			t.Errorf("duplicate code %q", p.Code)
		}
		seen[p.Code] = true
	}
}

func TestLabel(t *testing.T) {
	tests := []struct{ code, want string }{
		{"App_home", "📱 หน้าหลัก"},
		{"App_exam", "📱 การสอบทดวัดและประเมินผลรูปแบบออนไลน์"},
		{"Web_landing", "Web_landing"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := pagenames.Label(tt.code); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
	if pagenames.Known("Web_landing") {
		t.Error("unknown code reported as known")
	}
}
