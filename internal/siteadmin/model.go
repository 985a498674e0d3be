package siteadmin

import (
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type Service struct {
	db.Service
}

type User struct {
	db.User
}

type BlogPost struct {
	db.BlogPost
	Category Category
	Tags     []Tag
}

type Project struct {
	db.Project
	Services []Service
}

type Subscriber struct {
	db.Subscriber
}

type Message struct {
	db.Message
	AssignedTo *User
	RepliedBy  *User
}

// BlogPostDraft carries the writable fields of a blog post. Slug and
// Excerpt are derived from Title and Content when left empty.
type BlogPostDraft struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	CoverImage      *string
	Published       bool
	Status          string
	CategoryID      int
	TagIDs          []int
	MetaTitle       *string
	MetaDescription *string
	SeoKeywords     []string
}

// ProjectDraft carries the writable fields of a portfolio project.
type ProjectDraft struct {
	Title         string
	Slug          string
	CoverImage    *string
	Logo          *string
	Description   string
	ClientName    string
	ServiceIDs    []int
	CompletedDate time.Time
	Location      string
	Content       string
}

// ServiceDraft carries the writable fields of a service.
type ServiceDraft struct {
	Name        string
	Slug        string
	Description *string
	Icon        *string
	Active      bool
}

// SubscriberDraft carries the writable fields of a subscriber.
type SubscriberDraft struct {
	Email  string
	Name   string
	Status string
	Tags   []string
}

// SubscriberImport is one row of a bulk subscriber import.
type SubscriberImport struct {
	Email string
	Name  string
}

// MessageSubmission is a public contact form submission.
type MessageSubmission struct {
	Name     string
	Email    string
	Phone    *string
	Company  *string
	Subject  string
	Body     string
	Priority string
	Source   string
	Metadata *db.RequestMetadata
}

// MessagePatch carries the fields an admin may change on a message.
// Nil fields are left untouched.
type MessagePatch struct {
	Status       *string
	Priority     *string
	AssignedToID *int
}

// BlogPostStats mirrors the dashboard counters of the blog module.
type BlogPostStats struct {
	Total      int
	Published  int
	Drafts     int
	TotalViews int
}

// SubscriberStats is the newsletter dashboard aggregation.
type SubscriberStats struct {
	Total    int
	ByStatus map[string]int
	BySource map[string]int
	Recent   []Subscriber
}

// MessageStats is the inbox dashboard aggregation.
type MessageStats struct {
	Total      int
	ByStatus   map[string]int
	ByPriority map[string]int
	BySource   map[string]int
	Recent     []Message
}
