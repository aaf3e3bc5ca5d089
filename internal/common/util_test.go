package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", ErrorNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrorNotFound), KindNotFound},
		{"duplicate email", ErrorDuplicateEmail, KindDuplicateEmail},
		{"invalid credentials", ErrorInvalidCredentials, KindInvalidCredentials},
		{"validation", fmt.Errorf("%w: id must be numeric", ErrorValidation), KindValidation},
		{"password too long", ErrorPasswordTooLong, KindValidation},
		{"pool exhausted", ErrorPoolExhausted, KindPoolExhausted},
		{"anything else", errors.New("db error: connection refused"), KindStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "StoreError", KindStore.String())
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "DuplicateEmail", KindDuplicateEmail.String())
	assert.Equal(t, "InvalidCredentials", KindInvalidCredentials.String())
	assert.Equal(t, "ValidationError", KindValidation.String())
	assert.Equal(t, "PoolExhausted", KindPoolExhausted.String())
}
