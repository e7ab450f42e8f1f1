package attrs

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReplaceCategoryAttributes(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	suffix := random.Int()
	categoryID := createCategory(t, repo, fmt.Sprintf("saws-%d", suffix))
	first := createAttribute(t, repo, fmt.Sprintf("blade-%d", suffix), 0, true)
	second := createAttribute(t, repo, fmt.Sprintf("power-%d", suffix), 1, true)

	// unknown ids are skipped, not an error
	err := repo.ReplaceCategoryAttributes(ctx, categoryID, []int64{first, -1})
	require.NoError(t, err)

	rows, err := repo.CategoryAttributes(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, first, rows[0].ID)

	// wholesale replace drops the previous set
	err = repo.ReplaceCategoryAttributes(ctx, categoryID, []int64{second})
	require.NoError(t, err)

	rows, err = repo.CategoryAttributes(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, second, rows[0].ID)
}

func TestAddRemoveCategoryAttribute(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	suffix := random.Int()
	categoryID := createCategory(t, repo, fmt.Sprintf("sanders-%d", suffix))
	attributeID := createAttribute(t, repo, fmt.Sprintf("grit-%d", suffix), 0, true)

	added, err := repo.AddCategoryAttribute(ctx, categoryID, attributeID)
	require.NoError(t, err)
	require.True(t, added)

	// second add of the same pair reports false
	added, err = repo.AddCategoryAttribute(ctx, categoryID, attributeID)
	require.NoError(t, err)
	require.False(t, added)

	// unknown attribute reports false
	added, err = repo.AddCategoryAttribute(ctx, categoryID, -1)
	require.NoError(t, err)
	require.False(t, added)

	removed, err := repo.RemoveCategoryAttribute(ctx, categoryID, attributeID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = repo.RemoveCategoryAttribute(ctx, categoryID, attributeID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestActiveAttributesByCategoryName(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	suffix := random.Int()
	categoryName := fmt.Sprintf("routers-%d", suffix)
	categoryID := createCategory(t, repo, categoryName)

	activeAttr := createAttribute(t, repo, fmt.Sprintf("speed-%d", suffix), 0, true)
	inactiveAttr := createAttribute(t, repo, fmt.Sprintf("weight-%d", suffix), 1, false)

	err := repo.ReplaceCategoryAttributes(ctx, categoryID, []int64{activeAttr, inactiveAttr})
	require.NoError(t, err)

	rows, err := repo.ActiveAttributesByCategoryName(ctx, categoryName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, activeAttr, rows[0].ID)

	// unknown category name yields an empty list, not an error
	rows, err = repo.ActiveAttributesByCategoryName(ctx, fmt.Sprintf("missing-%d", suffix))
	require.NoError(t, err)
	require.Empty(t, rows)
}
