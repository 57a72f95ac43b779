package lock

import (
	"testing"
	"time"
)

func TestMutexExpired(t *testing.T) {
	m := &Mutex{ttl: 1}
	if m.Expired() {
		t.Error("never-acquired mutex reported expired")
	}

	m.acquiredAt = time.Now()
	if m.Expired() {
		t.Error("freshly acquired mutex reported expired")
	}

	m.acquiredAt = time.Now().Add(-2 * time.Second)
	if !m.Expired() {
		t.Error("mutex held past its ttl not reported expired")
	}
}
