package postgres

import (
	"context"
	"testing"

	"advisor/internal/domain/repository"
	"advisor/internal/infra/persistence/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Traversal(t *testing.T) {
	db := testdb.New(t)
	testdb.SeedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	first, err := repo.FirstQuestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), first.ID)
	assert.Equal(t, int64(1), first.SectionID)

	next, err := repo.NextQuestionAfter(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(11), next.ID)

	next, err = repo.NextQuestionAfter(ctx, 1, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(20), next.ID)
	assert.Equal(t, int64(2), next.SectionID)

	_, err = repo.NextQuestionAfter(ctx, 2, 20)
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)
}

func TestCatalogRepository_SkipsEmptySectionInTheMiddle(t *testing.T) {
	db := testdb.New(t)
	testdb.SeedGappedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	first, err := repo.FirstQuestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), first.ID)

	// Section 2 is empty; question 5 is reached although its ID is lower than 11.
	next, err := repo.NextQuestionAfter(ctx, 1, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(5), next.ID)
	assert.Equal(t, int64(3), next.SectionID)

	_, err = repo.NextQuestionAfter(ctx, 3, 5)
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)

	// A position inside the empty section still resolves forward.
	next, err = repo.NextQuestionAfter(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), next.ID)
}

func TestCatalogRepository_EmptyCatalog(t *testing.T) {
	repo := NewCatalogRepository(testdb.New(t))

	_, err := repo.FirstQuestion(context.Background())
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)
}

func TestCatalogRepository_OptionsFor(t *testing.T) {
	db := testdb.New(t)
	testdb.SeedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	options, err := repo.OptionsFor(ctx, 10)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, int64(100), options[0].ID)
	assert.Equal(t, "Low", options[0].Text)
	assert.Equal(t, int64(101), options[1].ID)

	options, err = repo.OptionsFor(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestCatalogRepository_Lookups(t *testing.T) {
	db := testdb.New(t)
	testdb.SeedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	option, err := repo.FindOption(ctx, 111)
	require.NoError(t, err)
	assert.Equal(t, int64(11), option.QuestionID)

	_, err = repo.FindOption(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrOptionNotFound)

	question, err := repo.FindQuestion(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, "Target?", question.Prompt)

	_, err = repo.FindQuestion(ctx, 21)
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)

	section, err := repo.FindSection(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Goals", section.Name)

	_, err = repo.FindSection(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrSectionNotFound)
}
