// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	BlogPost struct {
		ID, Title, Slug, Content, Excerpt, CoverImage, Published, Status,
		CategoryID, TagIDs, MetaTitle, MetaDescription, SeoKeywords, Views,
		PublishedAt, CreatedAt, UpdatedAt string

		Category string
	}
	Category struct {
		ID, Name, Slug, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Message struct {
		ID, Name, Email, Phone, Company, Subject, Body, Status, Priority,
		Source, SubmittedAt, Metadata, AssignedToID, ReplyContent, RepliedByID,
		RepliedAt, CreatedAt, UpdatedAt string

		AssignedTo, RepliedBy string
	}
	Project struct {
		ID, Title, Slug, CoverImage, Logo, Description, ClientName, ServiceIDs,
		CompletedDate, Location, Content, CreatedAt, UpdatedAt string
	}
	Service struct {
		ID, Name, Slug, Description, Icon, Active, CreatedAt, UpdatedAt string
	}
	Subscriber struct {
		ID, Email, Name, Status, Source, SubscribedAt, UnsubscribedAt, Tags,
		Metadata, CreatedAt, UpdatedAt string
	}
	Tag struct {
		ID, Name, Slug, CreatedAt, UpdatedAt string
	}
	User struct {
		ID, Name, Email, PasswordHash, Role, CreatedAt string
	}
}{
	BlogPost: struct {
		ID, Title, Slug, Content, Excerpt, CoverImage, Published, Status,
		CategoryID, TagIDs, MetaTitle, MetaDescription, SeoKeywords, Views,
		PublishedAt, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:              "blogPostId",
		Title:           "title",
		Slug:            "slug",
		Content:         "content",
		Excerpt:         "excerpt",
		CoverImage:      "coverImage",
		Published:       "published",
		Status:          "status",
		CategoryID:      "categoryId",
		TagIDs:          "tagIds",
		MetaTitle:       "metaTitle",
		MetaDescription: "metaDescription",
		SeoKeywords:     "seoKeywords",
		Views:           "views",
		PublishedAt:     "publishedAt",
		CreatedAt:       "createdAt",
		UpdatedAt:       "updatedAt",

		Category: "Category",
	},
	Category: struct {
		ID, Name, Slug, CreatedAt, UpdatedAt string
	}{
		ID:        "categoryId",
		Name:      "name",
		Slug:      "slug",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Message: struct {
		ID, Name, Email, Phone, Company, Subject, Body, Status, Priority,
		Source, SubmittedAt, Metadata, AssignedToID, ReplyContent, RepliedByID,
		RepliedAt, CreatedAt, UpdatedAt string

		AssignedTo, RepliedBy string
	}{
		ID:           "messageId",
		Name:         "name",
		Email:        "email",
		Phone:        "phone",
		Company:      "company",
		Subject:      "subject",
		Body:         "body",
		Status:       "status",
		Priority:     "priority",
		Source:       "source",
		SubmittedAt:  "submittedAt",
		Metadata:     "metadata",
		AssignedToID: "assignedToId",
		ReplyContent: "replyContent",
		RepliedByID:  "repliedById",
		RepliedAt:    "repliedAt",
		CreatedAt:    "createdAt",
		UpdatedAt:    "updatedAt",

		AssignedTo: "AssignedTo",
		RepliedBy:  "RepliedBy",
	},
	Project: struct {
		ID, Title, Slug, CoverImage, Logo, Description, ClientName, ServiceIDs,
		CompletedDate, Location, Content, CreatedAt, UpdatedAt string
	}{
		ID:            "projectId",
		Title:         "title",
		Slug:          "slug",
		CoverImage:    "coverImage",
		Logo:          "logo",
		Description:   "description",
		ClientName:    "clientName",
		ServiceIDs:    "serviceIds",
		CompletedDate: "completedDate",
		Location:      "location",
		Content:       "content",
		CreatedAt:     "createdAt",
		UpdatedAt:     "updatedAt",
	},
	Service: struct {
		ID, Name, Slug, Description, Icon, Active, CreatedAt, UpdatedAt string
	}{
		ID:          "serviceId",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		Icon:        "icon",
		Active:      "active",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	Subscriber: struct {
		ID, Email, Name, Status, Source, SubscribedAt, UnsubscribedAt, Tags,
		Metadata, CreatedAt, UpdatedAt string
	}{
		ID:             "subscriberId",
		Email:          "email",
		Name:           "name",
		Status:         "status",
		Source:         "source",
		SubscribedAt:   "subscribedAt",
		UnsubscribedAt: "unsubscribedAt",
		Tags:           "tags",
		Metadata:       "metadata",
		CreatedAt:      "createdAt",
		UpdatedAt:      "updatedAt",
	},
	Tag: struct {
		ID, Name, Slug, CreatedAt, UpdatedAt string
	}{
		ID:        "tagId",
		Name:      "name",
		Slug:      "slug",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	User: struct {
		ID, Name, Email, PasswordHash, Role, CreatedAt string
	}{
		ID:           "userId",
		Name:         "name",
		Email:        "email",
		PasswordHash: "passwordHash",
		Role:         "role",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	BlogPost struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Message struct {
		Name, Alias string
	}
	Project struct {
		Name, Alias string
	}
	Service struct {
		Name, Alias string
	}
	Subscriber struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	BlogPost: struct {
		Name, Alias string
	}{
		Name:  "blogposts",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Message: struct {
		Name, Alias string
	}{
		Name:  "messages",
		Alias: "t",
	},
	Project: struct {
		Name, Alias string
	}{
		Name:  "projects",
		Alias: "t",
	},
	Service: struct {
		Name, Alias string
	}{
		Name:  "services",
		Alias: "t",
	},
	Subscriber: struct {
		Name, Alias string
	}{
		Name:  "subscribers",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type BlogPost struct {
	tableName struct{} `pg:"blogposts,alias:t,discard_unknown_columns"`

	ID              int        `pg:"blogPostId,pk"`
	Title           string     `pg:"title,use_zero"`
	Slug            string     `pg:"slug,use_zero"`
	Content         string     `pg:"content,use_zero"`
	Excerpt         *string    `pg:"excerpt"`
	CoverImage      *string    `pg:"coverImage"`
	Published       bool       `pg:"published,use_zero"`
	Status          string     `pg:"status,use_zero"`
	CategoryID      int        `pg:"categoryId,use_zero"`
	TagIDs          []int      `pg:"tagIds,array,use_zero"`
	MetaTitle       *string    `pg:"metaTitle"`
	MetaDescription *string    `pg:"metaDescription"`
	SeoKeywords     []string   `pg:"seoKeywords,array,use_zero"`
	Views           int        `pg:"views,use_zero"`
	PublishedAt     *time.Time `pg:"publishedAt"`
	CreatedAt       time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt       *time.Time `pg:"updatedAt"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID        int        `pg:"categoryId,pk"`
	Name      string     `pg:"name,use_zero"`
	Slug      string     `pg:"slug,use_zero"`
	CreatedAt time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt *time.Time `pg:"updatedAt"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Message struct {
	tableName struct{} `pg:"messages,alias:t,discard_unknown_columns"`

	ID           int              `pg:"messageId,pk"`
	Name         string           `pg:"name,use_zero"`
	Email        string           `pg:"email,use_zero"`
	Phone        *string          `pg:"phone"`
	Company      *string          `pg:"company"`
	Subject      string           `pg:"subject,use_zero"`
	Body         string           `pg:"body,use_zero"`
	Status       string           `pg:"status,use_zero"`
	Priority     string           `pg:"priority,use_zero"`
	Source       string           `pg:"source,use_zero"`
	SubmittedAt  time.Time        `pg:"submittedAt,use_zero"`
	Metadata     *RequestMetadata `pg:"metadata"`
	AssignedToID *int             `pg:"assignedToId"`
	ReplyContent *string          `pg:"replyContent"`
	RepliedByID  *int             `pg:"repliedById"`
	RepliedAt    *time.Time       `pg:"repliedAt"`
	CreatedAt    time.Time        `pg:"createdAt,use_zero"`
	UpdatedAt    *time.Time       `pg:"updatedAt"`

	AssignedTo *User `pg:"fk:assignedToId,rel:has-one"`
	RepliedBy  *User `pg:"fk:repliedById,rel:has-one"`
}

type Project struct {
	tableName struct{} `pg:"projects,alias:t,discard_unknown_columns"`

	ID            int        `pg:"projectId,pk"`
	Title         string     `pg:"title,use_zero"`
	Slug          string     `pg:"slug,use_zero"`
	CoverImage    *string    `pg:"coverImage"`
	Logo          *string    `pg:"logo"`
	Description   string     `pg:"description,use_zero"`
	ClientName    string     `pg:"clientName,use_zero"`
	ServiceIDs    []int      `pg:"serviceIds,array,use_zero"`
	CompletedDate time.Time  `pg:"completedDate,use_zero"`
	Location      string     `pg:"location,use_zero"`
	Content       string     `pg:"content,use_zero"`
	CreatedAt     time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt     *time.Time `pg:"updatedAt"`
}

type Service struct {
	tableName struct{} `pg:"services,alias:t,discard_unknown_columns"`

	ID          int        `pg:"serviceId,pk"`
	Name        string     `pg:"name,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Description *string    `pg:"description"`
	Icon        *string    `pg:"icon"`
	Active      bool       `pg:"active,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   *time.Time `pg:"updatedAt"`
}

type Subscriber struct {
	tableName struct{} `pg:"subscribers,alias:t,discard_unknown_columns"`

	ID             int              `pg:"subscriberId,pk"`
	Email          string           `pg:"email,use_zero"`
	Name           string           `pg:"name,use_zero"`
	Status         string           `pg:"status,use_zero"`
	Source         string           `pg:"source,use_zero"`
	SubscribedAt   time.Time        `pg:"subscribedAt,use_zero"`
	UnsubscribedAt *time.Time       `pg:"unsubscribedAt"`
	Tags           []string         `pg:"tags,array,use_zero"`
	Metadata       *RequestMetadata `pg:"metadata"`
	CreatedAt      time.Time        `pg:"createdAt,use_zero"`
	UpdatedAt      *time.Time       `pg:"updatedAt"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID        int        `pg:"tagId,pk"`
	Name      string     `pg:"name,use_zero"`
	Slug      string     `pg:"slug,use_zero"`
	CreatedAt time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt *time.Time `pg:"updatedAt"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Name         string    `pg:"name,use_zero"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	Role         string    `pg:"role,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}

// RequestMetadata is stored as jsonb and captures where a submission came from.
type RequestMetadata struct {
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
}
