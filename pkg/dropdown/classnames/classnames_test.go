package classnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	userClass := "custom"
	var unset *string

	tests := []struct {
		name  string
		items []any
		want  string
	}{
		{
			name:  "no items",
			items: nil,
			want:  "",
		},
		{
			name:  "plain strings keep input order",
			items: []any{"b", "a", "c"},
			want:  "b a c",
		},
		{
			name:  "nil and empty entries are skipped",
			items: []any{nil, "a", "", unset, "b"},
			want:  "a b",
		},
		{
			name:  "string pointer is dereferenced",
			items: []any{"root", &userClass},
			want:  "root custom",
		},
		{
			name: "ordered flags keep their order",
			items: []any{"drop_down_input", Flags{
				{Name: "fluid", On: true},
				{Name: "expanded", On: false},
				{Name: "disabled", On: true},
			}},
			want: "drop_down_input fluid disabled",
		},
		{
			name:  "single flag",
			items: []any{Flag{Name: "selected", On: true}, Flag{Name: "hidden", On: false}},
			want:  "selected",
		},
		{
			name:  "map keys with true values are sorted",
			items: []any{"option", map[string]bool{"zeta": true, "alpha": true, "off": false}},
			want:  "option alpha zeta",
		},
		{
			name:  "unsupported types are ignored",
			items: []any{42, "a", struct{}{}, true},
			want:  "a",
		},
		{
			name:  "all falsy",
			items: []any{nil, "", Flags{{Name: "x", On: false}}, map[string]bool{"y": false}},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.items...))
		})
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Split(" a  b c "))
	assert.Empty(t, Split(""))
}
