package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_IsValid(t *testing.T) {
	valid := []string{
		"Ivan Ivanov",
		"Иван Иванов",
		"Anna",
		"Maria Del Carmen",
		"José Álvarez",
		"Ivan  Ivanov",
	}
	for _, s := range valid {
		assert.True(t, Name(s).IsValid(), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"   ",
		"ivan ivanov",
		"Ivan ivanov",
		"IVAN IVANOV",
		"McDonald",
		"Ivan Ivanov2",
		"Ivan-Ivanov",
		"Ivan_Ivanov",
		"O'Brien",
		"Ivan\tIvanov",
		"Ivan Ivanov!",
	}
	for _, s := range invalid {
		assert.False(t, Name(s).IsValid(), "expected %q to be invalid", s)
	}
}

func TestNewName(t *testing.T) {
	n, err := NewName("Ivan Ivanov")
	assert.NoError(t, err)
	assert.Equal(t, "Ivan Ivanov", n.String())

	_, err = NewName("ivan")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Contains(t, err.Error(), `"ivan"`)
}

func TestGradeAndTestScoreBounds(t *testing.T) {
	assert.False(t, Grade(1).IsValid())
	assert.True(t, Grade(2).IsValid())
	assert.True(t, Grade(5).IsValid())
	assert.False(t, Grade(6).IsValid())

	assert.False(t, TestScore(-1).IsValid())
	assert.True(t, TestScore(0).IsValid())
	assert.True(t, TestScore(100).IsValid())
	assert.False(t, TestScore(101).IsValid())
}
