package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"ACCOUNT_DISABLED", http.StatusForbidden},
		{"INVALID_CUSTOMER", http.StatusBadRequest},
		{"INVALID_CONVERSION_FACTOR", http.StatusBadRequest},
		{"WEAK_PASSWORD", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}
