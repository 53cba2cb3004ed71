package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthorList(t *testing.T) {
	got := ParseAuthorList("Timothy Yu|Jane Doe")
	assert.Equal(t, []Author{{First: "Timothy", Last: "Yu"}, {First: "Jane", Last: "Doe"}}, got)
}

func TestParseAuthorList_Empty(t *testing.T) {
	assert.Nil(t, ParseAuthorList(""))
	assert.Nil(t, ParseAuthorList("   "))
}

func TestParseAuthorList_SingleName(t *testing.T) {
	got := ParseAuthorList("Smith")
	assert.Equal(t, []Author{{Last: "Smith"}}, got)
}
