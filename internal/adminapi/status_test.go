package adminapi

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pending", "Pending"},
		{"PREPARING", "Preparing"},
		{"Ready", "Ready"},
		{"completed", "Completed"},
		{"cancelled", "Cancelled"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Any status sent through capitalize-then-lowercase must come back as the
// original lowercase value.
func TestStatusRoundTrip(t *testing.T) {
	for _, status := range []string{"pending", "preparing", "ready", "completed", "cancelled"} {
		if got := Normalize(Capitalize(status)); got != status {
			t.Errorf("Normalize(Capitalize(%q)) = %q, want %q", status, got, status)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Completed"); got != "completed" {
		t.Errorf("Normalize(Completed) = %q, want completed", got)
	}
	if got := Normalize("  Pending "); got != "pending" {
		t.Errorf("Normalize with spaces = %q, want pending", got)
	}
}
