package errors

import "testing"

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name     string
		n, max   int
		wantCode Code
	}{
		{"valid", 4, 10, ""},
		{"valid at limit", 10, 10, ""},
		{"no limit", 1000, 0, ""},
		{"zero", 0, 10, ErrCodeInvalidArgument},
		{"negative", -1, 10, ErrCodeInvalidArgument},
		{"over limit", 11, 10, ErrCodeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize("size", tt.n, tt.max)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateSize(%d, %d) code = %q, want %q (err %v)", tt.n, tt.max, got, tt.wantCode, err)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"zero means unlimited", 0, false},
		{"positive", 25, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLimit(tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLimit(%d) error = %v, wantErr %v", tt.limit, err, tt.wantErr)
			}
		})
	}
}
