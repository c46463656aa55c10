package domain

import (
	"errors"
	"testing"
)

func TestInputError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  InputError
		want string
	}{
		{
			name: "with message",
			err:  InputError{Field: "description", Message: "must not be empty"},
			want: "invalid description: must not be empty",
		},
		{
			name: "field only",
			err:  InputError{Field: "priority"},
			want: "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("InputError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputError_Unwrap(t *testing.T) {
	var err error = &InputError{Field: "description"}

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(%v, ErrInvalidInput) = false", err)
	}
	if errors.Is(err, ErrMalformedRecord) {
		t.Errorf("errors.Is(%v, ErrMalformedRecord) = true", err)
	}
}
