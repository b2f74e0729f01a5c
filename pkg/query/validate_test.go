package query_test

import (
	"testing"

	"github.com/gnames/airports/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestIsCoordinateValid(t *testing.T) {
	tests := []struct {
		text string
		res  bool
	}{
		{"abc", false},
		{"", false},
		{"45.5,N", true},
		{"-73.78", true},
		{"1234.5", true},
		{"abc12", true},
		{"N", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, query.IsCoordinateValid(v.text), v.text)
	}
}

func TestIsIATACodeValid(t *testing.T) {
	tests := []struct {
		text string
		res  bool
	}{
		{"jfk", false},
		{"JFK1", true},
		{"JFK", true},
		{"JF", false},
		{"xJFKx", true},
		{"J F K", false},
		{"", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, query.IsIATACodeValid(v.text), v.text)
	}
}
