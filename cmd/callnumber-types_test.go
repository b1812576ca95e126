package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCallNumberType(t *testing.T) {
	tests := []struct {
		input        string
		expectedName string
		expectedCode int
	}{
		{"Library of Congress classification", "Library of Congress classification", 0},
		{"LC Modified", "Library of Congress classification", 0},
		{"Dewey Decimal classification", "Dewey Decimal classification", 1},
		{"National Library of Medicine classification", "National Library of Medicine classification", 2},
		{"Superintendent of Documents classification", "Superintendent of Documents classification", 3},
		{"Shelving control number", "Shelving control number", 4},
		{"Title", "Title", 5},
		{"Shelved separately", "Shelved separately", 6},
	}

	for _, test := range tests {
		mapped := mapCallNumberType(test.input)
		assert.Equal(t, test.expectedName, mapped.name, test.input)
		assert.Equal(t, test.expectedCode, mapped.code, test.input)
	}
}

func TestMapCallNumberTypeUnknown(t *testing.T) {
	for _, name := range []string{"Foo", "", "library of congress classification"} {
		mapped := mapCallNumberType(name)
		assert.Equal(t, "Other scheme", mapped.name)
		assert.Equal(t, 8, mapped.code)
	}
}
