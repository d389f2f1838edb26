package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		payment   float64
		requested RegistrationStatus
		want      RegistrationStatus
	}{
		{"above threshold overrides pending", 600, StatusPending, StatusConfirmed},
		{"above threshold overrides cancelled", 501, StatusCancelled, StatusConfirmed},
		{"above threshold with empty status", 750, "", StatusConfirmed},
		{"exactly at threshold keeps requested", 500, StatusPending, StatusPending},
		{"just above threshold confirms", 500.01, StatusPending, StatusConfirmed},
		{"below threshold keeps requested", 100, StatusCancelled, StatusCancelled},
		{"below threshold keeps confirmed", 100, StatusConfirmed, StatusConfirmed},
		{"below threshold empty defaults to pending", 100, "", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.payment, tt.requested))
		})
	}
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", s.FullName())
}
