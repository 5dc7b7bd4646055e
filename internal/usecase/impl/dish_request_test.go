package impl

import (
	"testing"

	domainerrors "restaurant/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDishRequest(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    []dishLine
	}{
		{
			name:    "single dish",
			request: "Bread",
			want:    []dishLine{{Name: "Bread", Key: "bread", Quantity: 1}},
		},
		{
			name:    "comma separated list as the order form builds it",
			request: "Bread, Tomato Soup",
			want: []dishLine{
				{Name: "Bread", Key: "bread", Quantity: 1},
				{Name: "Tomato Soup", Key: "tomato soup", Quantity: 1},
			},
		},
		{
			name:    "quantity forms",
			request: "2 x Bread;3xTea\nTomato Soup x4",
			want: []dishLine{
				{Name: "Bread", Key: "bread", Quantity: 2},
				{Name: "Tea", Key: "tea", Quantity: 3},
				{Name: "Tomato Soup", Key: "tomato soup", Quantity: 4},
			},
		},
		{
			name:    "repeats merge case-insensitively",
			request: "Bread, bread , 2 x BREAD",
			want:    []dishLine{{Name: "Bread", Key: "bread", Quantity: 4}},
		},
		{
			name:    "blank entries and inner spaces",
			request: " ,  Tomato   Soup ,, ",
			want:    []dishLine{{Name: "Tomato Soup", Key: "tomato soup", Quantity: 1}},
		},
		{
			name:    "non-ASCII capitals fold",
			request: "CRÈME, 2 x crème",
			want:    []dishLine{{Name: "CRÈME", Key: "crème", Quantity: 3}},
		},
		{
			name:    "x inside a name is not a quantity",
			request: "Fox2, Mixed Salad, 3 Xmas Cookies",
			want: []dishLine{
				{Name: "Fox2", Key: "fox2", Quantity: 1},
				{Name: "Mixed Salad", Key: "mixed salad", Quantity: 1},
				{Name: "3 Xmas Cookies", Key: "3 xmas cookies", Quantity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDishRequest(tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDishRequest_Invalid(t *testing.T) {
	for _, request := range []string{"", "  ", ",;\n", "0 x Bread", "Bread x0", "5000 x Bread", "600 x Bread, 600 x Bread"} {
		t.Run(request, func(t *testing.T) {
			_, err := parseDishRequest(request)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
