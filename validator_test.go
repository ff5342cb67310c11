package ibl_test

import (
	"testing"

	"github.com/fwojciec/ibl"
	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	v, ok := ibl.Strip("  Nice Product \n")
	assert.True(t, ok)
	assert.Equal(t, "Nice Product", v)

	_, ok = ibl.Strip(" \n ")
	assert.False(t, ok)
}

func TestContainsAnyNumbers(t *testing.T) {
	t.Parallel()

	v, ok := ibl.ContainsAnyNumbers("from 20.00")
	assert.True(t, ok)
	assert.Equal(t, "from 20.00", v)

	_, ok = ibl.ContainsAnyNumbers("Range")
	assert.False(t, ok)
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "relative", input: "foo-bar.jpg", want: "foo-bar.jpg", ok: true},
		{name: "absolute", input: " http://www.image.com/image.jpg ", want: "http://www.image.com/image.jpg", ok: true},
		{name: "css", input: "background-image : url('http://www.site.com/path1/image.jpg')", want: "http://www.site.com/path1/image.jpg", ok: true},
		{name: "entities", input: "/img.php?a=1&amp;b=2", want: "/img.php?a=1&b=2", ok: true},
		{name: "blank", input: " \n ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ibl.ImageURL(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestItemSchema_Validated(t *testing.T) {
	t.Parallel()

	schema := ibl.NewItemSchema("product",
		ibl.Field{Name: "name", Required: true},
		ibl.Field{Name: "price", Required: true},
		ibl.Field{Name: "description"},
	)

	complete := ibl.NewRecord()
	complete.Add("name", "Widget")
	variant := ibl.NewRecord()
	variant.Add("price", "9.99")
	complete.Variants = []*ibl.Record{variant}

	partial := ibl.NewRecord()
	partial.Add("name", "Gadget")

	got := schema.Validated([]*ibl.Record{complete, partial})

	assert.Equal(t, []*ibl.Record{complete}, got)
	f, ok := schema.Field("price")
	assert.True(t, ok)
	assert.True(t, f.Required)
	_, ok = schema.Field("missing")
	assert.False(t, ok)
}
