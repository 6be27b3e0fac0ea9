package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapperAndReducer(t *testing.T) {
	items := []int{1, 2, 3}

	mapped := Mapper(items, func(i int) string { return strconv.Itoa(i * 2) })
	assert.Equal(t, []string{"2", "4", "6"}, mapped)

	sum := Reducer(items, func(acc int, i int) int { return acc + i }, 0)
	assert.Equal(t, 6, sum)
}

func TestKeyBy(t *testing.T) {
	type pair struct {
		key   string
		value int
	}
	items := []pair{{"a", 1}, {"b", 2}, {"a", 3}}

	indexed := KeyBy(items, func(p pair) string { return p.key })
	assert.Len(t, indexed, 2)
	assert.Equal(t, 3, indexed["a"].value)
	assert.Equal(t, 2, indexed["b"].value)
}

func TestIsProduction(t *testing.T) {
	t.Setenv(EnvKeyGoEnv, "production")
	assert.True(t, IsProduction())

	t.Setenv(EnvKeyGoEnv, "development")
	assert.False(t, IsProduction())
}
