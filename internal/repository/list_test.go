package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffected(t *testing.T) {
	notFound := models.ErrNotFoundWithMsg("video not found")

	assert.NoError(t, checkAffected(fakeResult{rows: 1}, notFound))
	assert.ErrorIs(t, checkAffected(fakeResult{rows: 0}, notFound), models.ErrNotFound)

	boom := errors.New("driver error")
	assert.ErrorIs(t, checkAffected(fakeResult{err: boom}, notFound), boom)
}

func TestTextArray_NeverNull(t *testing.T) {
	value, err := textArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", value)

	value, err = textArray(pq.StringArray{"Pool", "Gym"}).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"Pool","Gym"}`, value)
}
