package placeholder

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stratiz/internal/router"
)

func TestNoticeRendersAndLeavesOnEnter(t *testing.T) {
	p := New("My Progress", "Quiz history needs the local database.")
	assert.Contains(t, p.View(80, 20), "needs the local database")

	_, cmd := p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)

	_, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
