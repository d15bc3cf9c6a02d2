package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/datasets/internal/apperr"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
	}{
		{"", Asc},
		{"asc", Asc},
		{"ASC", Asc},
		{"desc", Desc},
		{"DeSc", Desc},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrder_Invalid(t *testing.T) {
	_, err := ParseOrder("sideways")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeBadRequest, apperr.CodeOf(err))
	assert.Contains(t, err.Error(), "sideways")
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "asc", Asc.String())
	assert.Equal(t, "desc", Desc.String())
}
