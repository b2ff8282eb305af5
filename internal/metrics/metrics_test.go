package metrics

import (
	"testing"
	"time"
)

func TestRegisterIsIdempotent(t *testing.T) {
	// Double registration would panic without the once guard.
	Register()
	Register()
}

func TestCountersDoNotPanic(t *testing.T) {
	Register()
	IncFetch("bookings", "success")
	IncFetch("bookings", "error")
	IncAction("products", "approve", "success")
	IncExport("users")
	ObserveAPIRequest("GET", 200, 120*time.Millisecond)
}
