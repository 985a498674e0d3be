package rest

import "github.com/daniilsolovey/site-admin/internal/siteadmin"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c siteadmin.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
	}
}

func NewTag(t siteadmin.Tag) Tag {
	return Tag{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
	}
}

func NewService(s siteadmin.Service) Service {
	return Service{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Icon:        s.Icon,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

func NewUser(u siteadmin.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func NewBlogPost(p siteadmin.BlogPost) BlogPost {
	excerpt := ""
	if p.Excerpt != nil {
		excerpt = *p.Excerpt
	}

	post := BlogPost{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         excerpt,
		CoverImage:      p.CoverImage,
		Published:       p.Published,
		Status:          p.Status,
		Category:        NewCategory(p.Category),
		Tags:            Map(p.Tags, NewTag),
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		SeoKeywords:     p.SeoKeywords,
		Views:           p.Views,
		PublishedAt:     p.PublishedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if post.Tags == nil {
		post.Tags = []Tag{}
	}
	if post.SeoKeywords == nil {
		post.SeoKeywords = []string{}
	}

	return post
}

// NewBlogPostSummary is the list item shape: no content, trimmed payload.
func NewBlogPostSummary(p siteadmin.BlogPost) BlogPost {
	summary := NewBlogPost(p)
	summary.Content = ""
	return summary
}

func NewProject(p siteadmin.Project) Project {
	project := Project{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		CoverImage:    p.CoverImage,
		Logo:          p.Logo,
		Description:   p.Description,
		ClientName:    p.ClientName,
		Services:      Map(p.Services, NewService),
		CompletedDate: p.CompletedDate,
		Location:      p.Location,
		Content:       p.Content,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if project.Services == nil {
		project.Services = []Service{}
	}

	return project
}

func NewSubscriber(s siteadmin.Subscriber) Subscriber {
	subscriber := Subscriber{
		ID:             s.ID,
		Email:          s.Email,
		Name:           s.Name,
		Status:         s.Status,
		Source:         s.Source,
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
		Tags:           s.Tags,
		CreatedAt:      s.CreatedAt,
	}
	if subscriber.Tags == nil {
		subscriber.Tags = []string{}
	}

	return subscriber
}

func NewMessage(m siteadmin.Message) Message {
	message := Message{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Company:      m.Company,
		Subject:      m.Subject,
		Body:         m.Body,
		Status:       m.Status,
		Priority:     m.Priority,
		Source:       m.Source,
		SubmittedAt:  m.SubmittedAt,
		ReplyContent: m.ReplyContent,
		RepliedAt:    m.RepliedAt,
		CreatedAt:    m.CreatedAt,
	}

	if m.Metadata != nil {
		message.Metadata = &Metadata{
			IP:        m.Metadata.IP,
			UserAgent: m.Metadata.UserAgent,
			Referrer:  m.Metadata.Referrer,
		}
	}
	if m.AssignedTo != nil {
		u := NewUser(*m.AssignedTo)
		message.AssignedTo = &u
	}
	if m.RepliedBy != nil {
		u := NewUser(*m.RepliedBy)
		message.RepliedBy = &u
	}

	return message
}

func NewBlogPostStats(s siteadmin.BlogPostStats) BlogPostStats {
	return BlogPostStats{
		Total:      s.Total,
		Published:  s.Published,
		Drafts:     s.Drafts,
		TotalViews: s.TotalViews,
	}
}

func NewSubscriberStats(s siteadmin.SubscriberStats) SubscriberStats {
	return SubscriberStats{
		Total:    s.Total,
		ByStatus: s.ByStatus,
		BySource: s.BySource,
		Recent:   Map(s.Recent, NewSubscriber),
	}
}

func NewMessageStats(s siteadmin.MessageStats) MessageStats {
	return MessageStats{
		Total:      s.Total,
		ByStatus:   s.ByStatus,
		ByPriority: s.ByPriority,
		BySource:   s.BySource,
		Recent:     Map(s.Recent, NewMessage),
	}
}

func NewCampaignResult(r siteadmin.CampaignResult) CampaignResult {
	result := CampaignResult{
		Total: r.Total,
		Sent:  r.Sent,
		Results: Map(r.Results, func(r siteadmin.Recipient) Recipient {
			return Recipient{ID: r.ID, Email: r.Email}
		}),
		Failed: Map(r.Failed, func(f siteadmin.SendFailure) SendFailure {
			return SendFailure{Email: f.Email, Error: f.Error}
		}),
	}
	if result.Results == nil {
		result.Results = []Recipient{}
	}
	if result.Failed == nil {
		result.Failed = []SendFailure{}
	}

	return result
}

func NewAnalyticsOverview(o siteadmin.AnalyticsOverview) AnalyticsOverview {
	return AnalyticsOverview{
		TimeRange: o.TimeRange,
		Newsletter: NewsletterAnalytics{
			SubscriberStats: NewSubscriberStats(o.Newsletter.SubscriberStats),
			NewSubscribers:  o.Newsletter.NewSubscribers,
		},
		Messages: MessageAnalytics{
			MessageStats: NewMessageStats(o.Messages.MessageStats),
			NewMessages:  o.Messages.NewMessages,
		},
		Metrics: AnalyticsMetrics{
			EngagementRate:    o.Metrics.EngagementRate,
			ResponseRate:      o.Metrics.ResponseRate,
			TotalInteractions: o.Metrics.TotalInteractions,
			GrowthRate:        o.Metrics.GrowthRate,
		},
		LastUpdated: o.LastUpdated,
	}
}
