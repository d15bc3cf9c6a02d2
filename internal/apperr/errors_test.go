package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := New(CodeBadRequest, "Provide either groupBy or sortBy")
	assert.Equal(t, "BAD_REQUEST: Provide either groupBy or sortBy", err.Error())
	assert.Equal(t, "Provide either groupBy or sortBy", err.Detail())
}

func TestError_WrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeStorageFault, "append record", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "append record: disk full", err.Detail())
	assert.Contains(t, err.Error(), "STORAGE_FAULT")
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", New(CodeDatasetNotFound, "x"), CodeDatasetNotFound},
		{"wrapped", fmt.Errorf("query: %w", New(CodeDatasetEmpty, "x")), CodeDatasetEmpty},
		{"plain", errors.New("boom"), CodeUnclassified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, Is(New(CodeBadRequest, "x"), CodeBadRequest))
	assert.False(t, Is(New(CodeBadRequest, "x"), CodeMalformedPayload))
	assert.False(t, Is(nil, CodeUnclassified))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeDatasetNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeDatasetEmpty))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeMalformedPayload))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeStorageFault))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeUnclassified))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Dataset not found", Category(CodeDatasetNotFound))
	assert.Equal(t, "Malformed JSON request", Category(CodeMalformedPayload))
	assert.Equal(t, "Bad request", Category(CodeBadRequest))
	assert.Equal(t, "An unexpected error occurred", Category(Code("SOMETHING_ELSE")))
}

func TestDetail_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Detail(errors.New("boom")))
}
