package userlist_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/idilsaglam/users/internal/model"
	"github.com/idilsaglam/users/internal/store"
	"github.com/idilsaglam/users/internal/userlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUsers(t *testing.T, names ...string) store.State {
	t.Helper()
	s := store.InitialState()
	for _, n := range names {
		var err error
		s, err = store.Reduce(s, store.Append{User: model.User{Name: n}})
		require.NoError(t, err)
	}
	return s
}

func TestLines(t *testing.T) {
	lines := userlist.Lines(withUsers(t, "Doc Brown", ""))

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], " 1.")
	assert.Contains(t, lines[0], "Marty McFly")
	assert.Contains(t, lines[1], " 2.")
	assert.Contains(t, lines[1], "Doc Brown")
	assert.Contains(t, lines[2], "(empty)")
}

func TestLines_TruncatesLongNames(t *testing.T) {
	lines := userlist.Lines(withUsers(t, strings.Repeat("x", 100)))

	assert.Contains(t, lines[1], strings.Repeat("x", 77)+"...")
	assert.NotContains(t, lines[1], strings.Repeat("x", 78))
}

func TestLines_TruncatesByWidth(t *testing.T) {
	lines := userlist.Lines(withUsers(t, strings.Repeat("é", 100), "日本"))

	assert.True(t, utf8.ValidString(lines[1]))
	assert.Contains(t, lines[1], strings.Repeat("é", 77)+"...")
	assert.NotContains(t, lines[1], strings.Repeat("é", 78))
	assert.Contains(t, lines[2], "日本")
}

func TestModel_SetStateShowsNewest(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("user%02d", i)
	}
	m := userlist.New(store.InitialState())
	m.SetSize(40, 8)

	m.SetState(withUsers(t, names...))

	assert.Equal(t, 30, m.Selected())
	assert.Contains(t, m.View(), "user29")
	assert.NotContains(t, m.View(), "Marty McFly")

	m.SetSize(40, 12)
	assert.Equal(t, 30, m.Selected())
	assert.Contains(t, m.View(), "user29")
}

func TestModel_SetState(t *testing.T) {
	m := userlist.New(store.InitialState())
	assert.Equal(t, []string{"Marty McFly"}, m.Names())

	m.SetState(withUsers(t, "Doc Brown", "Lorraine"))

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"Marty McFly", "Doc Brown", "Lorraine"}, m.Names())
}

func TestModel_View(t *testing.T) {
	m := userlist.New(withUsers(t, "Doc Brown"))
	m.SetSize(40, 10)

	v := m.View()
	assert.Contains(t, v, "Users")
	assert.Contains(t, v, "Marty McFly")
	assert.Contains(t, v, "Doc Brown")
}
