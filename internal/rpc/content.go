package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

//go:generate zenrpc

// ContentService provides RPC methods for the public read surface of the
// site: published blog posts, categories and tags.
type ContentService struct {
	zenrpc.Service
	manager *siteadmin.Manager
}

func NewContentService(manager *siteadmin.Manager) *ContentService {
	return &ContentService{manager: manager}
}

// List retrieves published blog posts with optional filtering by categoryId
// and tagId, with pagination. Returns PostSummary (without content) sorted
// by publishedAt DESC.
//
//zenrpc:categoryId optional category filter
//zenrpc:tagId optional tag filter
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=10 items per page
//zenrpc:return list of post summaries
//zenrpc:500 internal server error
func (s *ContentService) List(ctx context.Context, filter PostFilter) (PostSummaries, error) {
	page, limit := siteadmin.NormalizePage(intValue(filter.Page), intValue(filter.PageSize))

	posts, err := s.manager.PublishedBlogPosts(ctx, filter.CategoryID, filter.TagID, page, limit)
	if err != nil {
		return nil, err
	}

	return NewPostSummaries(posts), nil
}

// Count returns the count of published posts matching the optional
// categoryId and tagId filters.
//
//zenrpc:categoryId optional category filter
//zenrpc:tagId optional tag filter
//zenrpc:return count of published posts
//zenrpc:500 internal server error
func (s *ContentService) Count(ctx context.Context, filter PostCountFilter) (int, error) {
	return s.manager.PublishedBlogPostsCount(ctx, filter.CategoryID, filter.TagID)
}

// ByID retrieves a single published post by ID with full content, category
// and tags. Reading a post counts as a view.
//
//zenrpc:id blog post numeric ID
//zenrpc:return post with full content
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *ContentService) ByID(ctx context.Context, req PostByIDRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	found, err := s.manager.PublishedBlogPostByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	post := NewPost(*found)
	return &post, nil
}

// Categories retrieves all categories ordered by name.
//
//zenrpc:return list of categories
//zenrpc:404 categories not found
//zenrpc:500 internal server error
func (s *ContentService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, zenrpc.NewStringError(404, "categories not found")
	}

	return NewCategories(categories), nil
}

// Tags retrieves all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:404 tags not found
//zenrpc:500 internal server error
func (s *ContentService) Tags(ctx context.Context) (Tags, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, err
	}

	if len(tags) == 0 {
		return nil, zenrpc.NewStringError(404, "tags not found")
	}

	return NewTags(tags), nil
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
