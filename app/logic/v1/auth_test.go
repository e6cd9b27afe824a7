package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupAllowed(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		email string
		want  bool
	}{
		{"owner email matches", "me@example.com", "me@example.com", true},
		{"owner email case-insensitive", "Me@Example.com", "me@example.com", true},
		{"other email rejected", "me@example.com", "intruder@example.com", false},
		{"unset owner rejects everyone", "", "me@example.com", false},
		{"blank owner rejects everyone", "   ", "me@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signupAllowed(tt.owner, tt.email))
		})
	}
}
