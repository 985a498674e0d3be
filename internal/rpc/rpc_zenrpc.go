// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	ContentService struct{ List, Count, ByID, Categories, Tags string }
}{
	ContentService: struct{ List, Count, ByID, Categories, Tags string }{
		List:       "list",
		Count:      "count",
		ByID:       "byid",
		Categories: "categories",
		Tags:       "tags",
	},
}

func (ContentService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves published blog posts with optional filtering by categoryId
and tagId, with pagination. Returns PostSummary (without content) sorted
by publishedAt DESC.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "filter",
						Type:     smd.Object,
						TypeName: "PostFilter",
						Properties: smd.PropertyList{
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category filter`,
								Type:        smd.Integer,
							},
							{
								Name:        "tagId",
								Optional:    true,
								Description: `tagId optional tag filter`,
								Type:        smd.Integer,
							},
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=10 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of post summaries`,
					Type:        smd.Object,
					TypeName:    "PostSummaries",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name:     "coverImage",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "category",
							Ref:  "#/definitions/Category",
							Type: smd.Object,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
						{
							Name: "views",
							Type: smd.Integer,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Count": {
				Description: `Count returns the count of published posts matching the optional
categoryId and tagId filters.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "filter",
						Type:     smd.Object,
						TypeName: "PostCountFilter",
						Properties: smd.PropertyList{
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category filter`,
								Type:        smd.Integer,
							},
							{
								Name:        "tagId",
								Optional:    true,
								Description: `tagId optional tag filter`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `count of published posts`,
					Type:        smd.Integer,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single published post by ID with full content, category
and tags. Reading a post counts as a view.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostByIDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id blog post numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name:     "coverImage",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "category",
							Ref:  "#/definitions/Category",
							Type: smd.Object,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
						{
							Name: "views",
							Type: smd.Integer,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves all categories ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Object,
					TypeName:    "Categories",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "name",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					404: "categories not found",
					500: "internal server error",
				},
			},
			"Tags": {
				Description: `Tags retrieves all tags ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of tags`,
					Type:        smd.Object,
					TypeName:    "Tags",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "name",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					404: "tags not found",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s ContentService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.ContentService.List:
		var args = struct {
			Filter PostFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.ContentService.Count:
		var args = struct {
			Filter PostCountFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Count(ctx, args.Filter))

	case RPC.ContentService.ByID:
		var args = struct {
			Req PostByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.ContentService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.ContentService.Tags:
		resp.Set(s.Tags(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
