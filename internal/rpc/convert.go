package rpc

import "github.com/daniilsolovey/site-admin/internal/siteadmin"

func excerpt(p siteadmin.BlogPost) string {
	if p.Excerpt == nil {
		return ""
	}
	return *p.Excerpt
}

func NewPost(p siteadmin.BlogPost) Post {
	return Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     excerpt(p),
		CoverImage:  p.CoverImage,
		Category:    NewCategory(p.Category),
		Tags:        NewTags(p.Tags),
		Views:       p.Views,
		PublishedAt: p.PublishedAt,
	}
}

func NewPostSummary(p siteadmin.BlogPost) PostSummary {
	return PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     excerpt(p),
		CoverImage:  p.CoverImage,
		Category:    NewCategory(p.Category),
		Tags:        NewTags(p.Tags),
		Views:       p.Views,
		PublishedAt: p.PublishedAt,
	}
}

func NewPostSummaries(posts []siteadmin.BlogPost) PostSummaries {
	summaries := make(PostSummaries, len(posts))
	for i := range posts {
		summaries[i] = NewPostSummary(posts[i])
	}
	return summaries
}

func NewCategory(c siteadmin.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewCategories(categories []siteadmin.Category) Categories {
	result := make(Categories, len(categories))
	for i := range categories {
		result[i] = NewCategory(categories[i])
	}
	return result
}

func NewTag(t siteadmin.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewTags(tags []siteadmin.Tag) Tags {
	result := make(Tags, len(tags))
	for i := range tags {
		result[i] = NewTag(tags[i])
	}
	return result
}
