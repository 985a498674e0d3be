package siteadmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func TestBlogPostList_UniqueTagIDs(t *testing.T) {
	posts := NewBlogPostList([]db.BlogPost{
		{ID: 1, TagIDs: []int{3, 1}},
		{ID: 2, TagIDs: []int{1, 2}},
		{ID: 3},
	})

	assert.Equal(t, []int{3, 1, 2}, posts.UniqueTagIDs())
}

func TestBlogPostList_SetTags(t *testing.T) {
	posts := NewBlogPostList([]db.BlogPost{
		{ID: 1, TagIDs: []int{1, 99, 2}},
		{ID: 2},
	})
	tags := NewTags([]db.Tag{
		{ID: 1, Name: "Go"},
		{ID: 2, Name: "Postgres"},
	})

	posts.SetTags(tags)

	require.Len(t, posts[0].Tags, 2)
	assert.Equal(t, "Go", posts[0].Tags[0].Name)
	assert.Equal(t, "Postgres", posts[0].Tags[1].Name)
	assert.NotNil(t, posts[1].Tags)
	assert.Empty(t, posts[1].Tags)
}

func TestProjectList_SetServices(t *testing.T) {
	projects := NewProjectList([]db.Project{
		{ID: 1, ServiceIDs: []int{2, 1}},
	})
	services := NewServices([]db.Service{
		{ID: 1, Name: "Consulting"},
		{ID: 2, Name: "Web Development"},
	})

	assert.Equal(t, []int{2, 1}, projects.UniqueServiceIDs())

	projects.SetServices(services)

	require.Len(t, projects[0].Services, 2)
	assert.Equal(t, "Web Development", projects[0].Services[0].Name)
	assert.Equal(t, "Consulting", projects[0].Services[1].Name)
}

func TestNewBlogPost_LiftsCategoryRelation(t *testing.T) {
	post := NewBlogPost(&db.BlogPost{
		ID:    7,
		Title: "With category",
		Category: &db.Category{
			ID:   2,
			Name: "Engineering",
		},
	})

	assert.Equal(t, 2, post.Category.ID)
	assert.Equal(t, "Engineering", post.Category.Name)
	assert.Nil(t, post.BlogPost.Category)
}
