package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Lab 3: Pipes & Filters", "lab-3-pipes-filters"},
		{"  HW1  ", "hw1"},
		{"already-a-slug", "already-a-slug"},
		{"???", "lab-note"},
		{"", "lab-note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.name))
		})
	}
}
