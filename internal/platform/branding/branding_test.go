package branding

import "testing"

func TestAppNameNonEmpty(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected non-empty app name")
	}
}
