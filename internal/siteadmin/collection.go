package siteadmin

import (
	"github.com/daniilsolovey/site-admin/internal/db"
)

type (
	BlogPostList   []BlogPost
	ProjectList    []Project
	Tags           []Tag
	Services       []Service
	Categories     []Category
	SubscriberList []Subscriber
	MessageList    []Message
)

func NewBlogPostList(in []db.BlogPost) BlogPostList {
	out := make(BlogPostList, len(in))
	for i := range in {
		out[i] = NewBlogPost(&in[i])
	}
	return out
}

func NewProjectList(in []db.Project) ProjectList {
	out := make(ProjectList, len(in))
	for i := range in {
		out[i] = NewProject(&in[i])
	}
	return out
}

func NewTags(in []db.Tag) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTag(&in[i])
	}
	return out
}

func NewServices(in []db.Service) Services {
	out := make(Services, len(in))
	for i := range in {
		out[i] = NewService(&in[i])
	}
	return out
}

func NewCategories(in []db.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}
	return out
}

func NewSubscriberList(in []db.Subscriber) SubscriberList {
	out := make(SubscriberList, len(in))
	for i := range in {
		out[i] = NewSubscriber(&in[i])
	}
	return out
}

func NewMessageList(in []db.Message) MessageList {
	out := make(MessageList, len(in))
	for i := range in {
		out[i] = NewMessage(&in[i])
	}
	return out
}

func (tt Tags) IndexByID() map[int]Tag {
	index := make(map[int]Tag, len(tt))
	for _, t := range tt {
		index[t.ID] = t
	}
	return index
}

func (ss Services) IndexByID() map[int]Service {
	index := make(map[int]Service, len(ss))
	for _, s := range ss {
		index[s.ID] = s
	}
	return index
}

// UniqueTagIDs collects the distinct tag ids referenced by the posts,
// preserving first-seen order.
func (ll BlogPostList) UniqueTagIDs() []int {
	seen := make(map[int]struct{})
	var ids []int
	for i := range ll {
		for _, id := range ll[i].TagIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (ll BlogPostList) SetTags(tags Tags) {
	index := tags.IndexByID()
	for i := range ll {
		ll[i].Tags = make([]Tag, 0, len(ll[i].TagIDs))
		for _, id := range ll[i].TagIDs {
			if tag, ok := index[id]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}

// UniqueServiceIDs collects the distinct service ids referenced by the
// projects, preserving first-seen order.
func (pp ProjectList) UniqueServiceIDs() []int {
	seen := make(map[int]struct{})
	var ids []int
	for i := range pp {
		for _, id := range pp[i].ServiceIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (pp ProjectList) SetServices(services Services) {
	index := services.IndexByID()
	for i := range pp {
		pp[i].Services = make([]Service, 0, len(pp[i].ServiceIDs))
		for _, id := range pp[i].ServiceIDs {
			if service, ok := index[id]; ok {
				pp[i].Services = append(pp[i].Services, service)
			}
		}
	}
}
