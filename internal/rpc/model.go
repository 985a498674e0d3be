package rpc

import (
	"time"
)

type PostFilter struct {
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

type PostCountFilter struct {
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
}

type PostByIDRequest struct {
	//id blog post numeric ID
	ID int `json:"id"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Post struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Category    Category   `json:"category"`
	Tags        []Tag      `json:"tags"`
	Views       int        `json:"views"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type PostSummary struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Category    Category   `json:"category"`
	Tags        []Tag      `json:"tags"`
	Views       int        `json:"views"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type (
	PostSummaries []PostSummary
	Categories    []Category
	Tags          []Tag
)
