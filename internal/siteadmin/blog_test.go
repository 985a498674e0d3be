package siteadmin

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func validDraft() BlogPostDraft {
	return BlogPostDraft{
		Title:      "A Fine Post",
		Content:    "<p>body</p>",
		CategoryID: 1,
	}
}

func TestBlogPostDraft_Validate(t *testing.T) {
	t.Run("ValidDraftPasses", func(t *testing.T) {
		assert.NoError(t, validDraft().validate())
	})

	t.Run("MissingTitleFails", func(t *testing.T) {
		draft := validDraft()
		draft.Title = ""
		err := draft.validate()

		var vErr ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "title", vErr.Field)
	})

	t.Run("MissingContentFails", func(t *testing.T) {
		draft := validDraft()
		draft.Content = ""
		assert.Error(t, draft.validate())
	})

	t.Run("MissingCategoryFails", func(t *testing.T) {
		draft := validDraft()
		draft.CategoryID = 0

		var vErr ValidationError
		require.ErrorAs(t, draft.validate(), &vErr)
		assert.Equal(t, "categoryId", vErr.Field)
	})

	t.Run("UnknownStatusFails", func(t *testing.T) {
		draft := validDraft()
		draft.Status = "pending"
		assert.Error(t, draft.validate())
	})

	t.Run("KnownStatusesPass", func(t *testing.T) {
		for _, status := range []string{db.BlogStatusDraft, db.BlogStatusPublished, db.BlogStatusArchived} {
			draft := validDraft()
			draft.Status = status
			assert.NoError(t, draft.validate(), status)
		}
	})
}

func TestBlogPostDraft_Apply(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("DerivesSlugFromTitle", func(t *testing.T) {
		draft := validDraft()
		post := &db.BlogPost{}
		draft.apply(post, now)

		assert.Equal(t, "a-fine-post", post.Slug)
	})

	t.Run("ExplicitSlugWins", func(t *testing.T) {
		draft := validDraft()
		draft.Slug = "custom-slug"
		post := &db.BlogPost{}
		draft.apply(post, now)

		assert.Equal(t, "custom-slug", post.Slug)
	})

	t.Run("DerivesExcerptFromContent", func(t *testing.T) {
		draft := validDraft()
		post := &db.BlogPost{}
		draft.apply(post, now)

		require.NotNil(t, post.Excerpt)
		assert.Equal(t, "body", *post.Excerpt)
	})

	t.Run("DefaultsToDraftStatus", func(t *testing.T) {
		draft := validDraft()
		post := &db.BlogPost{}
		draft.apply(post, now)

		assert.Equal(t, db.BlogStatusDraft, post.Status)
		assert.False(t, post.Published)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("PublishedFlagForcesPublishedStatus", func(t *testing.T) {
		draft := validDraft()
		draft.Published = true
		post := &db.BlogPost{}
		draft.apply(post, now)

		assert.Equal(t, db.BlogStatusPublished, post.Status)
		assert.True(t, post.Published)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, now, *post.PublishedAt)
	})

	t.Run("PublishedStatusSetsFlag", func(t *testing.T) {
		draft := validDraft()
		draft.Status = db.BlogStatusPublished
		post := &db.BlogPost{}
		draft.apply(post, now)

		assert.True(t, post.Published)
		assert.NotNil(t, post.PublishedAt)
	})

	t.Run("PublishedAtNeverOverwritten", func(t *testing.T) {
		first := now.Add(-48 * time.Hour)
		draft := validDraft()
		draft.Status = db.BlogStatusPublished
		post := &db.BlogPost{PublishedAt: &first}
		draft.apply(post, now)

		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, first, *post.PublishedAt)
	})

	t.Run("UnpublishingKeepsPublishedAt", func(t *testing.T) {
		first := now.Add(-48 * time.Hour)
		draft := validDraft()
		draft.Status = db.BlogStatusDraft
		post := &db.BlogPost{Published: true, PublishedAt: &first}
		draft.apply(post, now)

		assert.False(t, post.Published)
		assert.Equal(t, db.BlogStatusDraft, post.Status)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, first, *post.PublishedAt)
	})

	t.Run("ArchivedStatusClearsFlag", func(t *testing.T) {
		draft := validDraft()
		draft.Status = db.BlogStatusArchived
		post := &db.BlogPost{Published: true}
		draft.apply(post, now)

		assert.False(t, post.Published)
		assert.Equal(t, db.BlogStatusArchived, post.Status)
	})
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "title", Reason: "must not be empty"}
	assert.Equal(t, "invalid title: must not be empty", err.Error())

	wrapped := func() error { return err }()
	var vErr ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
}
