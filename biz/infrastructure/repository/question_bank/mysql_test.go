package question_bank

import "testing"

func TestSafeString(t *testing.T) {
	if got := SafeString(nil); got != "" {
		t.Errorf("SafeString(nil) = %q, want empty", got)
	}
	v := "What is entropy?"
	if got := SafeString(&v); got != v {
		t.Errorf("SafeString() = %q, want %q", got, v)
	}
}
