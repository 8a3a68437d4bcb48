package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUniqueIdentifierFormat(t *testing.T) {
	re := regexp.MustCompile(`^ABC-\d{4}-STD$`)
	for i := 0; i < 50; i++ {
		id := GenerateUniqueIdentifier("abc", "std")
		assert.Regexp(t, re, id)
	}
}

func TestGenerateUniqueIdentifierTruncatesLongTag(t *testing.T) {
	id := GenerateUniqueIdentifier("XY", "student")
	assert.Regexp(t, `^XY-\d{4}-STUD$`, id)
}

func TestPrefixBase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Bright Future Academy", "BFA"},
		{"sunrise", "SSC"},
		{"", "SCH"},
		{"4th Avenue High School", "TAH"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, prefixBase(tc.name), "name=%q", tc.name)
	}
}
