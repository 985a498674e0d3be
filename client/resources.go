package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const apiPrefix = "/api/v1"

// ListParams are the shared pagination and filter query parameters.
type ListParams struct {
	Page     int
	Limit    int
	Status   string
	Priority string
	Source   string
	Category int
	Search   string
}

func (p ListParams) values() url.Values {
	query := url.Values{}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		query.Set("status", p.Status)
	}
	if p.Priority != "" {
		query.Set("priority", p.Priority)
	}
	if p.Source != "" {
		query.Set("source", p.Source)
	}
	if p.Category > 0 {
		query.Set("category", strconv.Itoa(p.Category))
	}
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	return query
}

type BlogPostInput struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug,omitempty"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt,omitempty"`
	CoverImage      *string  `json:"coverImage,omitempty"`
	Published       bool     `json:"published"`
	Status          string   `json:"status,omitempty"`
	CategoryID      int      `json:"categoryId"`
	TagIDs          []int    `json:"tagIds,omitempty"`
	MetaTitle       *string  `json:"metaTitle,omitempty"`
	MetaDescription *string  `json:"metaDescription,omitempty"`
	SeoKeywords     []string `json:"seoKeywords,omitempty"`
}

type ProjectInput struct {
	Title         string    `json:"title"`
	Slug          string    `json:"slug,omitempty"`
	CoverImage    *string   `json:"coverImage,omitempty"`
	Logo          *string   `json:"logo,omitempty"`
	Description   string    `json:"description"`
	ClientName    string    `json:"clientName"`
	ServiceIDs    []int     `json:"serviceIds,omitempty"`
	CompletedDate time.Time `json:"completedDate"`
	Location      string    `json:"location"`
	Content       string    `json:"content"`
}

type ServiceInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Active      bool    `json:"active"`
}

type SubscriberInput struct {
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Status string   `json:"status,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

type SubscribeInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// BulkSubscribersInput drives POST /newsletter/bulk. Action is one of
// subscribe, unsubscribe, update or delete; the field values only apply
// to the update action.
type BulkSubscribersInput struct {
	Action string   `json:"action"`
	Emails []string `json:"emails"`
	Status *string  `json:"status,omitempty"`
	Name   *string  `json:"name,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// BulkMessagesInput drives POST /messages/bulk. Action is one of
// markRead, markUnread, archive, assign or delete; UserID names the
// assignee for the assign action.
type BulkMessagesInput struct {
	Action string `json:"action"`
	IDs    []int  `json:"ids"`
	UserID int    `json:"userId,omitempty"`
}

type CampaignInput struct {
	Subject       string `json:"subject"`
	HTML          string `json:"html"`
	Status        string `json:"status,omitempty"`
	SubscriberIDs []int  `json:"subscriberIds,omitempty"`
}

type MessageInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	Subject  string  `json:"subject"`
	Body     string  `json:"body"`
	Priority string  `json:"priority,omitempty"`
	Source   string  `json:"source,omitempty"`
}

type MessagePatch struct {
	Status       *string `json:"status,omitempty"`
	Priority     *string `json:"priority,omitempty"`
	AssignedToID *int    `json:"assignedToId,omitempty"`
}

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResponse
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/auth/login", body, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if _, err := c.get(ctx, apiPrefix+"/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Blog posts

func (c *Client) BlogPosts(ctx context.Context, params ListParams) ([]BlogPost, *Pagination, error) {
	var posts []BlogPost
	envelope, err := c.get(ctx, apiPrefix+"/blogposts", params.values(), &posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, envelope.Pagination, nil
}

func (c *Client) BlogPostByID(ctx context.Context, id int) (*BlogPost, error) {
	var post BlogPost
	if _, err := c.get(ctx, fmt.Sprintf("%s/blogposts/%d", apiPrefix, id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreateBlogPost(ctx context.Context, input BlogPostInput) (*BlogPost, error) {
	var post BlogPost
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/blogposts", input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdateBlogPost(ctx context.Context, id int, input BlogPostInput) (*BlogPost, error) {
	var post BlogPost
	if _, err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/blogposts/%d", apiPrefix, id), input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) TogglePublish(ctx context.Context, id int) (*BlogPost, error) {
	var post BlogPost
	if _, err := c.mutate(ctx, http.MethodPatch, fmt.Sprintf("%s/blogposts/%d/publish", apiPrefix, id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeleteBlogPost(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/blogposts/%d", apiPrefix, id), nil, nil)
	return err
}

func (c *Client) BlogPostStats(ctx context.Context) (*BlogPostStats, error) {
	var stats BlogPostStats
	if _, err := c.get(ctx, apiPrefix+"/blogposts/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Projects

func (c *Client) Projects(ctx context.Context, params ListParams) ([]Project, *Pagination, error) {
	var projects []Project
	envelope, err := c.get(ctx, apiPrefix+"/projects", params.values(), &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, envelope.Pagination, nil
}

func (c *Client) ProjectByID(ctx context.Context, id int) (*Project, error) {
	var project Project
	if _, err := c.get(ctx, fmt.Sprintf("%s/projects/%d", apiPrefix, id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	var project Project
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/projects", input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int, input ProjectInput) (*Project, error) {
	var project Project
	if _, err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/projects/%d", apiPrefix, id), input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/projects/%d", apiPrefix, id), nil, nil)
	return err
}

// Services

func (c *Client) Services(ctx context.Context, activeOnly bool) ([]Service, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("active", "true")
	}

	var services []Service
	if _, err := c.get(ctx, apiPrefix+"/services", query, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, input ServiceInput) (*Service, error) {
	var service Service
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/services", input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) UpdateService(ctx context.Context, id int, input ServiceInput) (*Service, error) {
	var service Service
	if _, err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/services/%d", apiPrefix, id), input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) DeleteService(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/services/%d", apiPrefix, id), nil, nil)
	return err
}

// Taxonomy

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if _, err := c.get(ctx, apiPrefix+"/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var category Category
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/categories", map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, name string) (*Category, error) {
	var category Category
	if _, err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/categories/%d", apiPrefix, id), map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/categories/%d", apiPrefix, id), nil, nil)
	return err
}

func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if _, err := c.get(ctx, apiPrefix+"/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	var tag Tag
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/tags", map[string]string{"name": name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) UpdateTag(ctx context.Context, id int, name string) (*Tag, error) {
	var tag Tag
	if _, err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/tags/%d", apiPrefix, id), map[string]string{"name": name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) DeleteTag(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/tags/%d", apiPrefix, id), nil, nil)
	return err
}

// Newsletter

func (c *Client) Subscribers(ctx context.Context, params ListParams) ([]Subscriber, *Pagination, error) {
	var subscribers []Subscriber
	envelope, err := c.get(ctx, apiPrefix+"/newsletter", params.values(), &subscribers)
	if err != nil {
		return nil, nil, err
	}
	return subscribers, envelope.Pagination, nil
}

func (c *Client) Subscribe(ctx context.Context, input SubscribeInput) (*Subscriber, error) {
	var subscriber Subscriber
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/newsletter", input, &subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (c *Client) CreateSubscriber(ctx context.Context, input SubscriberInput) (*Subscriber, error) {
	var subscriber Subscriber
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/newsletter/subscribers", input, &subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (c *Client) UpdateSubscriber(ctx context.Context, id int, input SubscriberInput) (*Subscriber, error) {
	var subscriber Subscriber
	if _, err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/newsletter/subscribers/%d", apiPrefix, id), input, &subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (c *Client) DeleteSubscriber(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/newsletter/subscribers/%d", apiPrefix, id), nil, nil)
	return err
}

func (c *Client) ImportSubscribers(ctx context.Context, subscribers []SubscribeInput) (*ImportResult, error) {
	body := map[string]any{"subscribers": subscribers}

	var result ImportResult
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/newsletter/import", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) BulkSubscribers(ctx context.Context, input BulkSubscribersInput) (*BulkResult, error) {
	var result BulkResult
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/newsletter/bulk", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SubscriberStats(ctx context.Context) (*SubscriberStats, error) {
	var stats SubscriberStats
	if _, err := c.get(ctx, apiPrefix+"/newsletter/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ExportSubscribers(ctx context.Context) ([]byte, error) {
	return c.getRaw(ctx, apiPrefix+"/newsletter/export", nil)
}

func (c *Client) SendCampaign(ctx context.Context, input CampaignInput) (*CampaignResult, error) {
	var result CampaignResult
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/newsletter/send", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Messages

func (c *Client) Messages(ctx context.Context, params ListParams) ([]Message, *Pagination, error) {
	var messages []Message
	envelope, err := c.get(ctx, apiPrefix+"/messages", params.values(), &messages)
	if err != nil {
		return nil, nil, err
	}
	return messages, envelope.Pagination, nil
}

func (c *Client) MessageByID(ctx context.Context, id int) (*Message, error) {
	var message Message
	if _, err := c.get(ctx, fmt.Sprintf("%s/messages/%d", apiPrefix, id), nil, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) SubmitMessage(ctx context.Context, input MessageInput) (*Message, error) {
	var message Message
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/messages", input, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) UpdateMessage(ctx context.Context, id int, patch MessagePatch) (*Message, error) {
	var message Message
	if _, err := c.mutate(ctx, http.MethodPatch, fmt.Sprintf("%s/messages/%d", apiPrefix, id), patch, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) ReplyToMessage(ctx context.Context, id int, replyContent string) (*Message, error) {
	body := map[string]string{"replyContent": replyContent}

	var message Message
	if _, err := c.mutate(ctx, http.MethodPost, fmt.Sprintf("%s/messages/%d/reply", apiPrefix, id), body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) DeleteMessage(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/messages/%d", apiPrefix, id), nil, nil)
	return err
}

func (c *Client) BulkMessages(ctx context.Context, input BulkMessagesInput) (*BulkResult, error) {
	var result BulkResult
	if _, err := c.mutate(ctx, http.MethodPost, apiPrefix+"/messages/bulk", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) MessageStats(ctx context.Context) (*MessageStats, error) {
	var stats MessageStats
	if _, err := c.get(ctx, apiPrefix+"/messages/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ExportMessages(ctx context.Context) ([]byte, error) {
	return c.getRaw(ctx, apiPrefix+"/messages/export", nil)
}

// Analytics

func (c *Client) AnalyticsOverview(ctx context.Context, timeRange string) (*AnalyticsOverview, error) {
	query := url.Values{}
	if timeRange != "" {
		query.Set("timeRange", timeRange)
	}

	var overview AnalyticsOverview
	if _, err := c.get(ctx, apiPrefix+"/analytics/overview", query, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Upload

func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	c.cache.invalidate(apiPrefix + "/upload")

	var result UploadResult
	if _, err := decodeEnvelope(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteImage(ctx context.Context, filename string) error {
	_, err := c.mutate(ctx, http.MethodDelete, apiPrefix+"/upload/"+url.PathEscape(filename), nil, nil)
	return err
}
