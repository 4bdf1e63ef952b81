package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Override
		want Override
	}{
		{
			name: "boolean defaults survive without axis values",
			in:   Override{Padding: true, Margin: true},
			want: Override{Padding: true, Margin: true},
		},
		{
			name: "padding x suppresses padding default",
			in:   Override{PaddingX: "4", Padding: true},
			want: Override{PaddingX: "4"},
		},
		{
			name: "padding y suppresses padding default",
			in:   Override{PaddingY: "2", Padding: true},
			want: Override{PaddingY: "2"},
		},
		{
			name: "margin axis leaves padding default alone",
			in:   Override{MarginY: "auto", Margin: true, Padding: true},
			want: Override{MarginY: "auto", Padding: true},
		},
		{
			name: "padding axis leaves margin default alone",
			in:   Override{PaddingX: "1", Padding: true, Margin: true},
			want: Override{PaddingX: "1", Margin: true},
		},
		{
			name: "empty stays empty",
			in:   Override{},
			want: Override{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.in))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	in := Override{PaddingX: "4", PaddingY: "2", Padding: true, Margin: true, MarginX: "1"}
	once := Resolve(in)
	assert.Equal(t, once, Resolve(once))
	assert.False(t, once.IsZero())
	assert.True(t, Override{}.IsZero())
}
