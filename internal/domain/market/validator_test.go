package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		wantErr  bool
	}{
		{name: "name only", template: Template{Name: Some("A")}},
		{name: "empty name is still present", template: Template{Name: Some("")}},
		{name: "missing name", template: Template{City: Some("X")}, wantErr: true},
		{name: "id set", template: Template{ID: Some(int64(1)), Name: Some("A")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreate(tt.template)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.False(t, errors.Is(err, ErrStorageFailure))
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	assert.NoError(t, ValidateUpdate(Template{}))
	assert.NoError(t, ValidateUpdate(Template{Zip: Some("99999")}))

	err := ValidateUpdate(ByID(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualError(t, err, "id must not be specified")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := storageFailure("create market", cause)

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "create market: disk I/O error")

	var merr *Error
	assert.True(t, errors.As(err, &merr))
	assert.Equal(t, ErrStorageFailure, merr.Kind)
}
