package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/college"
	logsvc "github.com/trezcool/collegecompass/services/logger"
)

func TestNew(t *testing.T) {
	c, err := New(&core.Config{}, logsvc.NewNopLogger())
	require.NoError(t, err)

	res, err := c.Colleges.Search(college.Filters{Ranking: college.RankingTop10})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)

	dash, err := c.Dashboard.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, dash.Applications)
	assert.Len(t, dash.Favorites, 2)

	// containers do not share state
	other, err := New(&core.Config{}, logsvc.NewNopLogger())
	require.NoError(t, err)
	_, err = c.Colleges.ToggleFavorite(2)
	require.NoError(t, err)
	favs, err := other.Colleges.Favorites()
	require.NoError(t, err)
	assert.Len(t, favs, 2)
}
