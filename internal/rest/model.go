package rest

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogPost struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	Excerpt         string     `json:"excerpt"`
	CoverImage      *string    `json:"coverImage,omitempty"`
	Published       bool       `json:"published"`
	Status          string     `json:"status"`
	Category        Category   `json:"category"`
	Tags            []Tag      `json:"tags"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
	SeoKeywords     []string   `json:"seoKeywords"`
	Views           int        `json:"views"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type Project struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	CoverImage    *string    `json:"coverImage,omitempty"`
	Logo          *string    `json:"logo,omitempty"`
	Description   string     `json:"description"`
	ClientName    string     `json:"clientName"`
	Services      []Service  `json:"services"`
	CompletedDate time.Time  `json:"completedDate"`
	Location      string     `json:"location"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type Subscriber struct {
	ID             int        `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	Source         string     `json:"source"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
	Tags           []string   `json:"tags"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type Metadata struct {
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
}

type Message struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Subject      string     `json:"subject"`
	Body         string     `json:"body"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Source       string     `json:"source"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Metadata     *Metadata  `json:"metadata,omitempty"`
	AssignedTo   *User      `json:"assignedTo,omitempty"`
	ReplyContent *string    `json:"replyContent,omitempty"`
	RepliedBy    *User      `json:"repliedBy,omitempty"`
	RepliedAt    *time.Time `json:"repliedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type BlogPostStats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	TotalViews int `json:"totalViews"`
}

type SubscriberStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	BySource map[string]int `json:"bySource"`
	Recent   []Subscriber   `json:"recent"`
}

type MessageStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	BySource   map[string]int `json:"bySource"`
	Recent     []Message      `json:"recent"`
}

type Recipient struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type SendFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

type CampaignResult struct {
	Total   int           `json:"total"`
	Sent    int           `json:"sent"`
	Results []Recipient   `json:"results"`
	Failed  []SendFailure `json:"failed"`
}

type NewsletterAnalytics struct {
	SubscriberStats
	NewSubscribers int `json:"newSubscribers"`
}

type MessageAnalytics struct {
	MessageStats
	NewMessages int `json:"newMessages"`
}

type AnalyticsMetrics struct {
	EngagementRate    float64 `json:"engagementRate"`
	ResponseRate      float64 `json:"responseRate"`
	TotalInteractions int     `json:"totalInteractions"`
	GrowthRate        float64 `json:"growthRate"`
}

type AnalyticsOverview struct {
	TimeRange   string              `json:"timeRange"`
	Newsletter  NewsletterAnalytics `json:"newsletter"`
	Messages    MessageAnalytics    `json:"messages"`
	Metrics     AnalyticsMetrics    `json:"metrics"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

type BulkResult struct {
	Affected int `json:"affected"`
}

type UploadResult struct {
	Filename string `json:"filename"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
