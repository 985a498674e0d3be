package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestRepository_BlogPosts_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("WithoutFilterReturnsAllSortedByCreatedAt", func(t *testing.T) {
		posts, err := repo.BlogPosts(ctx, BlogPostFilter{}, 1, 10)
		if err != nil {
			t.Fatalf("BlogPosts failed: %v", err)
		}
		if len(posts) != 3 {
			t.Fatalf("expected 3 posts, got %d", len(posts))
		}
		for i := 1; i < len(posts); i++ {
			if posts[i-1].CreatedAt.Before(posts[i].CreatedAt) {
				t.Errorf("posts not sorted by createdAt DESC at index %d", i)
			}
		}
		for i := range posts {
			if posts[i].Category == nil {
				t.Errorf("post %d has no category loaded", posts[i].ID)
			}
		}
	})

	t.Run("StatusFilter", func(t *testing.T) {
		posts, err := repo.BlogPosts(ctx, BlogPostFilter{Status: BlogStatusPublished}, 1, 10)
		if err != nil {
			t.Fatalf("BlogPosts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 published post, got %d", len(posts))
		}
		if posts[0].Slug != "shipping-a-go-admin-api" {
			t.Errorf("unexpected post %q", posts[0].Slug)
		}
	})

	t.Run("StatusAllDoesNotFilter", func(t *testing.T) {
		count, err := repo.BlogPostsCount(ctx, BlogPostFilter{Status: "all"})
		if err != nil {
			t.Fatalf("BlogPostsCount failed: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 posts with status=all, got %d", count)
		}
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		posts, err := repo.BlogPosts(ctx, BlogPostFilter{Category: 2}, 1, 10)
		if err != nil {
			t.Fatalf("BlogPosts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 post in category 2, got %d", len(posts))
		}
		if posts[0].CategoryID != 2 {
			t.Errorf("expected categoryId 2, got %d", posts[0].CategoryID)
		}
	})

	t.Run("SearchMatchesTitleCaseInsensitive", func(t *testing.T) {
		posts, err := repo.BlogPosts(ctx, BlogPostFilter{Search: "ADMIN api"}, 1, 10)
		if err != nil {
			t.Fatalf("BlogPosts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 matching post, got %d", len(posts))
		}
		if posts[0].Title != "Shipping a Go Admin API" {
			t.Errorf("unexpected post %q", posts[0].Title)
		}
	})

	t.Run("CountMatchesFilter", func(t *testing.T) {
		count, err := repo.BlogPostsCount(ctx, BlogPostFilter{Status: BlogStatusDraft})
		if err != nil {
			t.Fatalf("BlogPostsCount failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 draft, got %d", count)
		}
	})

	t.Run("InvalidPageRejected", func(t *testing.T) {
		if _, err := repo.BlogPosts(ctx, BlogPostFilter{}, 0, 10); err == nil {
			t.Error("expected error for page 0")
		}
	})
}

func TestRepository_PublishedBlogPosts_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ReturnsOnlyPublished", func(t *testing.T) {
		posts, err := repo.PublishedBlogPosts(ctx, nil, nil, 1, 10)
		if err != nil {
			t.Fatalf("PublishedBlogPosts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 published post, got %d", len(posts))
		}
		if !posts[0].Published || posts[0].Status != BlogStatusPublished {
			t.Errorf("post %d is not published", posts[0].ID)
		}
	})

	t.Run("TagFilterMatchesArrayColumn", func(t *testing.T) {
		posts, err := repo.PublishedBlogPosts(ctx, nil, intPtr(2), 1, 10)
		if err != nil {
			t.Fatalf("PublishedBlogPosts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 post with tag 2, got %d", len(posts))
		}
	})

	t.Run("TagFilterExcludesUnpublished", func(t *testing.T) {
		// tag 3 only appears on a draft
		count, err := repo.PublishedBlogPostsCount(ctx, nil, intPtr(3))
		if err != nil {
			t.Fatalf("PublishedBlogPostsCount failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 published posts with tag 3, got %d", count)
		}
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		count, err := repo.PublishedBlogPostsCount(ctx, intPtr(1), nil)
		if err != nil {
			t.Fatalf("PublishedBlogPostsCount failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 published post in category 1, got %d", count)
		}
	})
}

func TestRepository_BlogPostCRUD_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ByIDLoadsCategory", func(t *testing.T) {
		post, err := repo.BlogPostByID(ctx, 1)
		if err != nil {
			t.Fatalf("BlogPostByID failed: %v", err)
		}
		if post == nil {
			t.Fatal("expected post 1, got nil")
		}
		if post.Category == nil || post.Category.Name != "Engineering" {
			t.Errorf("expected Engineering category loaded, got %+v", post.Category)
		}
	})

	t.Run("ByIDMissingReturnsNil", func(t *testing.T) {
		post, err := repo.BlogPostByID(ctx, 9999)
		if err != nil {
			t.Fatalf("BlogPostByID failed: %v", err)
		}
		if post != nil {
			t.Errorf("expected nil for missing post, got %+v", post)
		}
	})

	t.Run("AddAssignsIDAndRoundTrips", func(t *testing.T) {
		post := &BlogPost{
			Title:      "Fresh Post",
			Slug:       "fresh-post",
			Content:    "Body.",
			Status:     BlogStatusDraft,
			CategoryID: 1,
			TagIDs:     []int{1},
			CreatedAt:  time.Now(),
		}
		if err := repo.AddBlogPost(ctx, post); err != nil {
			t.Fatalf("AddBlogPost failed: %v", err)
		}
		if post.ID == 0 {
			t.Fatal("expected generated id")
		}

		got, err := repo.BlogPostByID(ctx, post.ID)
		if err != nil {
			t.Fatalf("BlogPostByID failed: %v", err)
		}
		if got == nil || got.Title != "Fresh Post" {
			t.Errorf("round trip failed: %+v", got)
		}
	})

	t.Run("DuplicateSlugIsIntegrityViolation", func(t *testing.T) {
		// aborts its transaction, so it gets its own
		ctx, repo := withTx(t)

		err := repo.AddBlogPost(ctx, &BlogPost{
			Title:      "Dup",
			Slug:       "shipping-a-go-admin-api",
			Content:    "x",
			Status:     BlogStatusDraft,
			CategoryID: 1,
			CreatedAt:  time.Now(),
		})
		if err == nil {
			t.Fatal("expected duplicate slug to fail")
		}
		if !IsIntegrityViolation(err) {
			t.Errorf("expected integrity violation, got %v", err)
		}
	})

	t.Run("UpdatePersistsChanges", func(t *testing.T) {
		ctx, repo := withTx(t)

		post, err := repo.BlogPostByID(ctx, 2)
		if err != nil || post == nil {
			t.Fatalf("BlogPostByID failed: %v", err)
		}
		post.Title = "Design System Notes v2"
		post.Category = nil
		if err := repo.UpdateBlogPost(ctx, post); err != nil {
			t.Fatalf("UpdateBlogPost failed: %v", err)
		}

		got, err := repo.BlogPostByID(ctx, 2)
		if err != nil {
			t.Fatalf("BlogPostByID failed: %v", err)
		}
		if got.Title != "Design System Notes v2" {
			t.Errorf("expected updated title, got %q", got.Title)
		}
	})

	t.Run("DeleteReportsExistence", func(t *testing.T) {
		ctx, repo := withTx(t)

		deleted, err := repo.DeleteBlogPost(ctx, 3)
		if err != nil {
			t.Fatalf("DeleteBlogPost failed: %v", err)
		}
		if !deleted {
			t.Error("expected delete of existing post to report true")
		}

		deleted, err = repo.DeleteBlogPost(ctx, 3)
		if err != nil {
			t.Fatalf("DeleteBlogPost failed: %v", err)
		}
		if deleted {
			t.Error("expected second delete to report false")
		}
	})

	t.Run("IncrementViews", func(t *testing.T) {
		ctx, repo := withTx(t)

		if err := repo.IncrementBlogPostViews(ctx, 1); err != nil {
			t.Fatalf("IncrementBlogPostViews failed: %v", err)
		}

		post, err := repo.BlogPostByID(ctx, 1)
		if err != nil {
			t.Fatalf("BlogPostByID failed: %v", err)
		}
		if post.Views != 121 {
			t.Errorf("expected 121 views, got %d", post.Views)
		}
	})
}

func TestRepository_BlogPostStats_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	stats, err := repo.BlogPostStats(ctx)
	if err != nil {
		t.Fatalf("BlogPostStats failed: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.Published != 1 {
		t.Errorf("expected 1 published, got %d", stats.Published)
	}
	if stats.Drafts != 1 {
		t.Errorf("expected 1 draft, got %d", stats.Drafts)
	}
	if stats.TotalViews != 120+4+55 {
		t.Errorf("expected %d total views, got %d", 120+4+55, stats.TotalViews)
	}
}

func TestRepository_Taxonomy_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("CategoriesSortedByName", func(t *testing.T) {
		categories, err := repo.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		for i := 1; i < len(categories); i++ {
			if categories[i-1].Name > categories[i].Name {
				t.Errorf("categories not sorted by name at index %d", i)
			}
		}
	})

	t.Run("TagsByIDsPreservesExistingOnly", func(t *testing.T) {
		tags, err := repo.TagsByIDs(ctx, []int{2, 999, 1})
		if err != nil {
			t.Fatalf("TagsByIDs failed: %v", err)
		}
		if len(tags) != 2 {
			t.Fatalf("expected 2 tags, got %d", len(tags))
		}
	})

	t.Run("AddCategoryRoundTrips", func(t *testing.T) {
		category := &Category{Name: "Ops", Slug: "ops", CreatedAt: time.Now()}
		if err := repo.AddCategory(ctx, category); err != nil {
			t.Fatalf("AddCategory failed: %v", err)
		}

		got, err := repo.CategoryByID(ctx, category.ID)
		if err != nil {
			t.Fatalf("CategoryByID failed: %v", err)
		}
		if got == nil || got.Slug != "ops" {
			t.Errorf("round trip failed: %+v", got)
		}
	})

	t.Run("DeleteReferencedCategoryFails", func(t *testing.T) {
		ctx, repo := withTx(t)

		_, err := repo.DeleteCategory(ctx, 1)
		if err == nil {
			t.Fatal("expected FK violation deleting referenced category")
		}
		if !IsIntegrityViolation(err) {
			t.Errorf("expected integrity violation, got %v", err)
		}
	})

	t.Run("DeleteUnreferencedTag", func(t *testing.T) {
		ctx, repo := withTx(t)

		tag := &Tag{Name: "Temp", Slug: "temp", CreatedAt: time.Now()}
		if err := repo.AddTag(ctx, tag); err != nil {
			t.Fatalf("AddTag failed: %v", err)
		}

		deleted, err := repo.DeleteTag(ctx, tag.ID)
		if err != nil {
			t.Fatalf("DeleteTag failed: %v", err)
		}
		if !deleted {
			t.Error("expected delete to report true")
		}
	})
}

func TestRepository_Subscribers_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("WithoutFilterReturnsAllSortedBySubscribedAt", func(t *testing.T) {
		subscribers, err := repo.Subscribers(ctx, SubscriberFilter{}, 1, 10)
		if err != nil {
			t.Fatalf("Subscribers failed: %v", err)
		}
		if len(subscribers) != 4 {
			t.Fatalf("expected 4 subscribers, got %d", len(subscribers))
		}
		for i := 1; i < len(subscribers); i++ {
			if subscribers[i-1].SubscribedAt.Before(subscribers[i].SubscribedAt) {
				t.Errorf("subscribers not sorted by subscribedAt DESC at index %d", i)
			}
		}
	})

	t.Run("StatusAndSourceFilters", func(t *testing.T) {
		active, err := repo.SubscribersCount(ctx, SubscriberFilter{Status: SubscriberStatusActive})
		if err != nil {
			t.Fatalf("SubscribersCount failed: %v", err)
		}
		if active != 2 {
			t.Errorf("expected 2 active subscribers, got %d", active)
		}

		fromWebsite, err := repo.SubscribersCount(ctx, SubscriberFilter{Source: SubscriberSourceWebsite})
		if err != nil {
			t.Fatalf("SubscribersCount failed: %v", err)
		}
		if fromWebsite != 2 {
			t.Errorf("expected 2 website subscribers, got %d", fromWebsite)
		}
	})

	t.Run("SearchMatchesEmailAndName", func(t *testing.T) {
		subscribers, err := repo.Subscribers(ctx, SubscriberFilter{Search: "ALICE"}, 1, 10)
		if err != nil {
			t.Fatalf("Subscribers failed: %v", err)
		}
		if len(subscribers) != 1 || subscribers[0].Email != "alice@example.com" {
			t.Fatalf("expected alice, got %+v", subscribers)
		}
	})

	t.Run("ByEmailMissingReturnsNil", func(t *testing.T) {
		subscriber, err := repo.SubscriberByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("SubscriberByEmail failed: %v", err)
		}
		if subscriber != nil {
			t.Errorf("expected nil, got %+v", subscriber)
		}
	})

	t.Run("AudienceByIDs", func(t *testing.T) {
		subscribers, err := repo.SubscribersByAudience(ctx, []int{1, 3}, SubscriberStatusActive)
		if err != nil {
			t.Fatalf("SubscribersByAudience failed: %v", err)
		}
		if len(subscribers) != 1 || subscribers[0].Email != "alice@example.com" {
			t.Fatalf("expected only active alice, got %+v", subscribers)
		}
	})

	t.Run("AudienceByStatusOnly", func(t *testing.T) {
		subscribers, err := repo.SubscribersByAudience(ctx, nil, SubscriberStatusActive)
		if err != nil {
			t.Fatalf("SubscribersByAudience failed: %v", err)
		}
		if len(subscribers) != 2 {
			t.Fatalf("expected 2 active subscribers, got %d", len(subscribers))
		}
	})
}

func TestRepository_SubscriberBulkOps_Integration(t *testing.T) {
	t.Run("InsertSkipsExistingEmails", func(t *testing.T) {
		ctx, repo := withTx(t)

		now := time.Now()
		inserted, err := repo.InsertSubscribers(ctx, []Subscriber{
			{Email: "alice@example.com", Status: SubscriberStatusActive, Source: SubscriberSourceImport, SubscribedAt: now, CreatedAt: now},
			{Email: "erin@example.com", Status: SubscriberStatusActive, Source: SubscriberSourceImport, SubscribedAt: now, CreatedAt: now},
			{Email: "judy@example.com", Status: SubscriberStatusActive, Source: SubscriberSourceImport, SubscribedAt: now, CreatedAt: now},
		})
		if err != nil {
			t.Fatalf("InsertSubscribers failed: %v", err)
		}
		if inserted != 2 {
			t.Errorf("expected 2 inserted, got %d", inserted)
		}

		total, err := repo.SubscribersCount(ctx, SubscriberFilter{})
		if err != nil {
			t.Fatalf("SubscribersCount failed: %v", err)
		}
		if total != 6 {
			t.Errorf("expected 6 subscribers total, got %d", total)
		}
	})

	t.Run("UnsubscribeKeepsOriginalTimestamp", func(t *testing.T) {
		ctx, repo := withTx(t)

		now := time.Now().UTC().Truncate(time.Second)
		updated, err := repo.UnsubscribeByEmails(ctx, []string{"alice@example.com", "carol@example.com"}, now)
		if err != nil {
			t.Fatalf("UnsubscribeByEmails failed: %v", err)
		}
		if updated != 2 {
			t.Errorf("expected 2 rows updated, got %d", updated)
		}

		alice, err := repo.SubscriberByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("SubscriberByEmail failed: %v", err)
		}
		if alice.Status != SubscriberStatusUnsubscribed {
			t.Errorf("expected alice unsubscribed, got %q", alice.Status)
		}
		if alice.UnsubscribedAt == nil || !alice.UnsubscribedAt.Equal(now) {
			t.Errorf("expected unsubscribedAt %v, got %v", now, alice.UnsubscribedAt)
		}

		// carol was already unsubscribed two days before BaseTime
		carol, err := repo.SubscriberByEmail(ctx, "carol@example.com")
		if err != nil {
			t.Fatalf("SubscriberByEmail failed: %v", err)
		}
		if carol.UnsubscribedAt == nil || !carol.UnsubscribedAt.Equal(BaseTime.Add(-2*24*time.Hour)) {
			t.Errorf("carol's original unsubscribedAt was overwritten: %v", carol.UnsubscribedAt)
		}
	})

	t.Run("UpdateByEmailsAppliesPatch", func(t *testing.T) {
		ctx, repo := withTx(t)

		updated, err := repo.UpdateSubscribersByEmails(ctx,
			[]string{"bob@example.com", "dave@example.com"},
			SubscriberPatch{Status: strPtr(SubscriberStatusActive), Tags: []string{"vip"}},
			time.Now())
		if err != nil {
			t.Fatalf("UpdateSubscribersByEmails failed: %v", err)
		}
		if updated != 2 {
			t.Errorf("expected 2 rows updated, got %d", updated)
		}

		dave, err := repo.SubscriberByEmail(ctx, "dave@example.com")
		if err != nil {
			t.Fatalf("SubscriberByEmail failed: %v", err)
		}
		if dave.Status != SubscriberStatusActive {
			t.Errorf("expected dave reactivated, got %q", dave.Status)
		}
		if len(dave.Tags) != 1 || dave.Tags[0] != "vip" {
			t.Errorf("expected tags [vip], got %v", dave.Tags)
		}
	})

	t.Run("DeleteByEmails", func(t *testing.T) {
		ctx, repo := withTx(t)

		deleted, err := repo.DeleteSubscribersByEmails(ctx, []string{"carol@example.com", "nobody@example.com"})
		if err != nil {
			t.Fatalf("DeleteSubscribersByEmails failed: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected 1 row deleted, got %d", deleted)
		}
	})

	t.Run("EmptyInputIsNoOp", func(t *testing.T) {
		ctx, repo := withTx(t)

		n, err := repo.UnsubscribeByEmails(ctx, nil, time.Now())
		if err != nil || n != 0 {
			t.Errorf("expected no-op, got n=%d err=%v", n, err)
		}
	})
}

func TestRepository_SubscriberStats_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	statusCounts, err := repo.SubscriberStatusCounts(ctx)
	if err != nil {
		t.Fatalf("SubscriberStatusCounts failed: %v", err)
	}
	counts := make(map[string]int, len(statusCounts))
	for _, c := range statusCounts {
		counts[c.Value] = c.Count
	}
	if counts[SubscriberStatusActive] != 2 || counts[SubscriberStatusUnsubscribed] != 1 || counts[SubscriberStatusBounced] != 1 {
		t.Errorf("unexpected status counts: %v", counts)
	}

	sourceCounts, err := repo.SubscriberSourceCounts(ctx)
	if err != nil {
		t.Fatalf("SubscriberSourceCounts failed: %v", err)
	}
	counts = make(map[string]int, len(sourceCounts))
	for _, c := range sourceCounts {
		counts[c.Value] = c.Count
	}
	if counts[SubscriberSourceWebsite] != 2 || counts[SubscriberSourceAdmin] != 1 || counts[SubscriberSourceImport] != 1 {
		t.Errorf("unexpected source counts: %v", counts)
	}

	recent, err := repo.RecentSubscribers(ctx)
	if err != nil {
		t.Fatalf("RecentSubscribers failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("expected 4 recent subscribers, got %d", len(recent))
	}
	if recent[0].Email != "alice@example.com" {
		t.Errorf("expected alice first, got %q", recent[0].Email)
	}

	// all seeded signups happened within ten days before BaseTime
	count, err := repo.SubscribersCountSince(ctx, BaseTime.Add(-10*24*time.Hour))
	if err != nil {
		t.Fatalf("SubscribersCountSince failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 signups in the window, got %d", count)
	}
	count, err = repo.SubscribersCountSince(ctx, BaseTime.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("SubscribersCountSince failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no signups after BaseTime, got %d", count)
	}
}

func TestRepository_Messages_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("WithoutFilterReturnsAllSortedByCreatedAt", func(t *testing.T) {
		messages, err := repo.Messages(ctx, MessageFilter{}, 1, 10)
		if err != nil {
			t.Fatalf("Messages failed: %v", err)
		}
		if len(messages) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(messages))
		}
		if messages[0].Email != "frank@example.com" {
			t.Errorf("expected frank first, got %q", messages[0].Email)
		}
	})

	t.Run("StatusAndPriorityFilters", func(t *testing.T) {
		unread, err := repo.MessagesCount(ctx, MessageFilter{Status: MessageStatusUnread})
		if err != nil {
			t.Fatalf("MessagesCount failed: %v", err)
		}
		if unread != 2 {
			t.Errorf("expected 2 unread messages, got %d", unread)
		}

		high, err := repo.MessagesCount(ctx, MessageFilter{Priority: MessagePriorityHigh})
		if err != nil {
			t.Fatalf("MessagesCount failed: %v", err)
		}
		if high != 1 {
			t.Errorf("expected 1 high priority message, got %d", high)
		}
	})

	t.Run("SearchMatchesSubjectAndBody", func(t *testing.T) {
		messages, err := repo.Messages(ctx, MessageFilter{Search: "quote"}, 1, 10)
		if err != nil {
			t.Fatalf("Messages failed: %v", err)
		}
		if len(messages) != 1 || messages[0].Email != "frank@example.com" {
			t.Fatalf("expected frank's quote request, got %+v", messages)
		}
	})

	t.Run("ByIDMissingReturnsNil", func(t *testing.T) {
		message, err := repo.MessageByID(ctx, 9999)
		if err != nil {
			t.Fatalf("MessageByID failed: %v", err)
		}
		if message != nil {
			t.Errorf("expected nil, got %+v", message)
		}
	})

	t.Run("AllMessagesUnpaginated", func(t *testing.T) {
		messages, err := repo.AllMessages(ctx, MessageFilter{})
		if err != nil {
			t.Fatalf("AllMessages failed: %v", err)
		}
		if len(messages) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(messages))
		}
	})
}

func TestRepository_MessageBulkOps_Integration(t *testing.T) {
	t.Run("SetStatus", func(t *testing.T) {
		ctx, repo := withTx(t)

		updated, err := repo.SetMessagesStatus(ctx, []int{1, 3}, MessageStatusArchived, time.Now())
		if err != nil {
			t.Fatalf("SetMessagesStatus failed: %v", err)
		}
		if updated != 2 {
			t.Errorf("expected 2 rows updated, got %d", updated)
		}

		message, err := repo.MessageByID(ctx, 1)
		if err != nil {
			t.Fatalf("MessageByID failed: %v", err)
		}
		if message.Status != MessageStatusArchived {
			t.Errorf("expected archived, got %q", message.Status)
		}
	})

	t.Run("AssignLoadsAssigneeRelation", func(t *testing.T) {
		ctx, repo := withTx(t)

		updated, err := repo.AssignMessages(ctx, []int{1, 2}, 2, time.Now())
		if err != nil {
			t.Fatalf("AssignMessages failed: %v", err)
		}
		if updated != 2 {
			t.Errorf("expected 2 rows updated, got %d", updated)
		}

		message, err := repo.MessageByID(ctx, 1)
		if err != nil {
			t.Fatalf("MessageByID failed: %v", err)
		}
		if message.AssignedTo == nil || message.AssignedTo.Name != "Editor" {
			t.Errorf("expected Editor assigned, got %+v", message.AssignedTo)
		}
	})

	t.Run("DeleteSkipsMissingIDs", func(t *testing.T) {
		ctx, repo := withTx(t)

		deleted, err := repo.DeleteMessages(ctx, []int{2, 9999})
		if err != nil {
			t.Fatalf("DeleteMessages failed: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected 1 row deleted, got %d", deleted)
		}
	})
}

func TestRepository_MessageStats_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	statusCounts, err := repo.MessageStatusCounts(ctx)
	if err != nil {
		t.Fatalf("MessageStatusCounts failed: %v", err)
	}
	counts := make(map[string]int, len(statusCounts))
	for _, c := range statusCounts {
		counts[c.Value] = c.Count
	}
	if counts[MessageStatusUnread] != 2 || counts[MessageStatusRead] != 1 {
		t.Errorf("unexpected status counts: %v", counts)
	}

	recent, err := repo.RecentMessages(ctx)
	if err != nil {
		t.Fatalf("RecentMessages failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent messages, got %d", len(recent))
	}
	if recent[0].Email != "frank@example.com" {
		t.Errorf("expected frank first, got %q", recent[0].Email)
	}

	count, err := repo.MessagesCountSince(ctx, BaseTime.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("MessagesCountSince failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 messages in the window, got %d", count)
	}
}

func TestRepository_Projects_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ListSortedByCreatedAt", func(t *testing.T) {
		projects, err := repo.Projects(ctx, 1, 10)
		if err != nil {
			t.Fatalf("Projects failed: %v", err)
		}
		if len(projects) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(projects))
		}
		if projects[0].Slug != "retail-replatform" {
			t.Errorf("expected most recently created first, got %q", projects[0].Slug)
		}
	})

	t.Run("ServicesByIDsSkipsMissing", func(t *testing.T) {
		services, err := repo.ServicesByIDs(ctx, []int{1, 999})
		if err != nil {
			t.Fatalf("ServicesByIDs failed: %v", err)
		}
		if len(services) != 1 || services[0].Name != "Web Development" {
			t.Fatalf("expected Web Development, got %+v", services)
		}
	})

	t.Run("ActiveOnlyServices", func(t *testing.T) {
		services, err := repo.Services(ctx, true)
		if err != nil {
			t.Fatalf("Services failed: %v", err)
		}
		if len(services) != 2 {
			t.Fatalf("expected 2 active services, got %d", len(services))
		}
		for _, service := range services {
			if !service.Active {
				t.Errorf("service %q is not active", service.Name)
			}
		}
	})

	t.Run("AddProjectRoundTrips", func(t *testing.T) {
		project := &Project{
			Title:         "New Build",
			Slug:          "new-build",
			Description:   "Greenfield build.",
			ClientName:    "NewCo",
			ServiceIDs:    []int{2},
			CompletedDate: time.Now(),
			Location:      "Remote",
			Content:       "Case study.",
			CreatedAt:     time.Now(),
		}
		if err := repo.AddProject(ctx, project); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}

		got, err := repo.ProjectByID(ctx, project.ID)
		if err != nil {
			t.Fatalf("ProjectByID failed: %v", err)
		}
		if got == nil || got.ClientName != "NewCo" {
			t.Errorf("round trip failed: %+v", got)
		}
	})
}

func TestRepository_Users_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ByEmail", func(t *testing.T) {
		user, err := repo.UserByEmail(ctx, "admin@example.com")
		if err != nil {
			t.Fatalf("UserByEmail failed: %v", err)
		}
		if user == nil || user.Role != RoleAdmin {
			t.Fatalf("expected admin user, got %+v", user)
		}
	})

	t.Run("ByEmailMissingReturnsNil", func(t *testing.T) {
		user, err := repo.UserByEmail(ctx, "ghost@example.com")
		if err != nil {
			t.Fatalf("UserByEmail failed: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil, got %+v", user)
		}
	})

	t.Run("AddUserRoundTrips", func(t *testing.T) {
		user := &User{Name: "New Editor", Email: "new@example.com", PasswordHash: "x", Role: RoleEditor, CreatedAt: time.Now()}
		if err := repo.AddUser(ctx, user); err != nil {
			t.Fatalf("AddUser failed: %v", err)
		}

		got, err := repo.UserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("UserByID failed: %v", err)
		}
		if got == nil || got.Email != "new@example.com" {
			t.Errorf("round trip failed: %+v", got)
		}
	})
}
