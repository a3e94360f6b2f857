package reflist

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	name  string
	value int
}

func (c *counter) Build() string {
	return c.name + "=" + strconv.Itoa(c.value)
}

func TestBuild(t *testing.T) {
	l := FromSlice([]counter{{"a", 1}, {"b", 2}})
	l.At(0).value = 10

	assert.Equal(t, []string{"a=10", "b=2"}, Build(l, (*counter).Build))
	assert.Empty(t, Build(Empty[counter](), (*counter).Build))
}

func TestBuildOptional(t *testing.T) {
	l := sequence(6)

	odd := BuildOptional(l, func(v *int) (string, bool) {
		if *v%2 == 0 {
			return "", false
		}

		return strconv.Itoa(*v), true
	})

	assert.Equal(t, []string{"1", "3", "5"}, odd)
}

func TestBuildOrEmpty(t *testing.T) {
	var nilList *RefList[counter]

	out := BuildOrEmpty(nilList, (*counter).Build)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	assert.Equal(t, []string{"x=1"}, BuildOrEmpty(FromSlice([]counter{{"x", 1}}), (*counter).Build))
}

type tags []string

func TestCloneOrEmpty(t *testing.T) {
	var none tags

	out := CloneOrEmpty(none)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	src := tags{"a", "b"}
	clone := CloneOrEmpty(src)
	clone[0] = "z"

	assert.Equal(t, tags{"a", "b"}, src, "clone must not share storage")
	assert.IsType(t, tags{}, clone)
}
