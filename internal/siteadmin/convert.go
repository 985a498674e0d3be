package siteadmin

import (
	"github.com/daniilsolovey/site-admin/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewService(s *db.Service) Service {
	return Service{Service: *s}
}

func NewUser(u *db.User) User {
	return User{User: *u}
}

func NewSubscriber(s *db.Subscriber) Subscriber {
	return Subscriber{Subscriber: *s}
}

func NewBlogPost(p *db.BlogPost) BlogPost {
	post := BlogPost{BlogPost: *p}
	post.BlogPost.Category = nil

	if p.Category != nil {
		post.Category = NewCategory(p.Category)
	}

	return post
}

func NewProject(p *db.Project) Project {
	return Project{Project: *p}
}

func NewMessage(m *db.Message) Message {
	message := Message{Message: *m}
	message.Message.AssignedTo = nil
	message.Message.RepliedBy = nil

	if m.AssignedTo != nil {
		u := NewUser(m.AssignedTo)
		message.AssignedTo = &u
	}
	if m.RepliedBy != nil {
		u := NewUser(m.RepliedBy)
		message.RepliedBy = &u
	}

	return message
}
