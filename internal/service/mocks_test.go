package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/queue"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// page applies the descriptor's predicate and window to items.
func page[T any](items []T, d listquery.Descriptor, record func(T) map[string]string) ([]T, int64) {
	var matched []T
	for _, item := range items {
		if d.Matches(record(item)) {
			matched = append(matched, item)
		}
	}

	total := int64(len(matched))
	start := min(d.Offset, len(matched))
	end := min(start+d.Limit, len(matched))
	return matched[start:end], total
}

// Mock property repository for testing
type mockPropertyRepo struct {
	properties []*models.Property
	listCalls  int

	// afterList runs once a page has been read, before it is returned.
	afterList func()
}

func (m *mockPropertyRepo) Create(ctx context.Context, p *models.Property) error {
	for _, existing := range m.properties {
		if existing.Slug == p.Slug {
			return models.ErrAlreadyExistsWithMsg("property slug already exists")
		}
	}
	p.ID = int64(len(m.properties) + 1)
	cp := *p
	m.properties = append(m.properties, &cp)
	return nil
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	for _, p := range m.properties {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("property not found")
}

func (m *mockPropertyRepo) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	for _, p := range m.properties {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("property not found")
}

func (m *mockPropertyRepo) List(ctx context.Context, d listquery.Descriptor) ([]*models.Property, int64, error) {
	m.listCalls++
	items, total := page(m.properties, d, func(p *models.Property) map[string]string {
		return map[string]string{
			"name":      p.Name,
			"builder":   p.Builder,
			"location":  p.Location,
			"type":      p.Type,
			"status":    p.Status,
			"featured":  strconv.FormatBool(p.Featured),
			"published": strconv.FormatBool(p.Published),
		}
	})
	out := make([]*models.Property, len(items))
	for i, p := range items {
		cp := *p
		out[i] = &cp
	}
	if m.afterList != nil {
		hook := m.afterList
		m.afterList = nil
		hook()
	}
	return out, total, nil
}

func (m *mockPropertyRepo) Update(ctx context.Context, p *models.Property) error {
	for i, existing := range m.properties {
		if existing.ID == p.ID {
			cp := *p
			m.properties[i] = &cp
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("property not found")
}

func (m *mockPropertyRepo) Delete(ctx context.Context, id int64) error {
	for i, p := range m.properties {
		if p.ID == id {
			m.properties = append(m.properties[:i], m.properties[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("property not found")
}

// Mock blog repository for testing
type mockBlogRepo struct {
	posts []*models.BlogPost
}

func (m *mockBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	for _, existing := range m.posts {
		if existing.Slug == post.Slug {
			return models.ErrAlreadyExistsWithMsg("blog slug already exists")
		}
	}
	post.ID = int64(len(m.posts) + 1)
	cp := *post
	m.posts = append(m.posts, &cp)
	return nil
}

func (m *mockBlogRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	for _, p := range m.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("blog post not found")
}

func (m *mockBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("blog post not found")
}

func (m *mockBlogRepo) List(ctx context.Context, d listquery.Descriptor) ([]*models.BlogPost, int64, error) {
	items, total := page(m.posts, d, func(p *models.BlogPost) map[string]string {
		return map[string]string{
			"title":     p.Title,
			"excerpt":   p.Excerpt,
			"author":    p.Author,
			"category":  p.Category,
			"published": strconv.FormatBool(p.Published),
		}
	})
	return items, total, nil
}

func (m *mockBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	for i, existing := range m.posts {
		if existing.ID == post.ID {
			cp := *post
			m.posts[i] = &cp
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("blog post not found")
}

func (m *mockBlogRepo) Delete(ctx context.Context, id int64) error {
	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("blog post not found")
}

// Mock video repository for testing
type mockVideoRepo struct {
	videos []*models.Video
}

func (m *mockVideoRepo) Create(ctx context.Context, v *models.Video) error {
	v.ID = int64(len(m.videos) + 1)
	cp := *v
	m.videos = append(m.videos, &cp)
	return nil
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	for _, v := range m.videos {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("video not found")
}

func (m *mockVideoRepo) List(ctx context.Context, d listquery.Descriptor) ([]*models.Video, int64, error) {
	items, total := page(m.videos, d, func(v *models.Video) map[string]string {
		propertyID := ""
		if v.PropertyID != nil {
			propertyID = strconv.FormatInt(*v.PropertyID, 10)
		}
		return map[string]string{
			"title":       v.Title,
			"description": v.Description,
			"property_id": propertyID,
			"published":   strconv.FormatBool(v.Published),
		}
	})
	return items, total, nil
}

func (m *mockVideoRepo) Update(ctx context.Context, v *models.Video) error {
	for i, existing := range m.videos {
		if existing.ID == v.ID {
			cp := *v
			m.videos[i] = &cp
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("video not found")
}

func (m *mockVideoRepo) Delete(ctx context.Context, id int64) error {
	for i, v := range m.videos {
		if v.ID == id {
			m.videos = append(m.videos[:i], m.videos[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("video not found")
}

// Mock enquiry repository for testing
type mockEnquiryRepo struct {
	enquiries []*models.Enquiry
	createErr error
}

func (m *mockEnquiryRepo) Create(ctx context.Context, e *models.Enquiry) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = int64(len(m.enquiries) + 1)
	cp := *e
	m.enquiries = append(m.enquiries, &cp)
	return nil
}

func (m *mockEnquiryRepo) GetByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	for _, e := range m.enquiries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("enquiry not found")
}

func (m *mockEnquiryRepo) List(ctx context.Context, d listquery.Descriptor) ([]*models.Enquiry, int64, error) {
	items, total := page(m.enquiries, d, func(e *models.Enquiry) map[string]string {
		return map[string]string{
			"name":    e.Name,
			"email":   e.Email,
			"phone":   e.Phone,
			"message": e.Message,
			"kind":    e.Kind,
			"status":  e.Status,
			"source":  e.Source,
		}
	})
	return items, total, nil
}

func (m *mockEnquiryRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	for _, e := range m.enquiries {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("enquiry not found")
}

func (m *mockEnquiryRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range m.enquiries {
		if e.ID == id {
			m.enquiries = append(m.enquiries[:i], m.enquiries[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("enquiry not found")
}

// Mock registration repository for testing
type mockRegistrationRepo struct {
	registrations []*models.Registration
}

func (m *mockRegistrationRepo) Create(ctx context.Context, r *models.Registration) error {
	r.ID = int64(len(m.registrations) + 1)
	cp := *r
	m.registrations = append(m.registrations, &cp)
	return nil
}

func (m *mockRegistrationRepo) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	for _, r := range m.registrations {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("registration not found")
}

func (m *mockRegistrationRepo) List(ctx context.Context, d listquery.Descriptor) ([]*models.Registration, int64, error) {
	items, total := page(m.registrations, d, func(r *models.Registration) map[string]string {
		return map[string]string{
			"name":   r.Name,
			"email":  r.Email,
			"phone":  r.Phone,
			"city":   r.City,
			"kind":   r.Kind,
			"status": r.Status,
			"source": r.Source,
		}
	})
	return items, total, nil
}

func (m *mockRegistrationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	for _, r := range m.registrations {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("registration not found")
}

func (m *mockRegistrationRepo) Delete(ctx context.Context, id int64) error {
	for i, r := range m.registrations {
		if r.ID == id {
			m.registrations = append(m.registrations[:i], m.registrations[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("registration not found")
}

// Mock notification repository for testing
type mockNotificationRepo struct {
	notifications []*models.Notification
	createErr     error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	n.ID = int64(len(m.notifications) + 1)
	cp := *n
	m.notifications = append(m.notifications, &cp)
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	for _, n := range m.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("notification not found")
}

func (m *mockNotificationRepo) UpdateStatus(ctx context.Context, id int64, status string, lastError *string) error {
	for _, n := range m.notifications {
		if n.ID == id {
			n.Status = status
			n.LastError = lastError
			return nil
		}
	}
	return models.ErrNotFoundWithMsg("notification not found")
}

func (m *mockNotificationRepo) IncrementRetryCount(ctx context.Context, id int64) error {
	return nil
}

func (m *mockNotificationRepo) ListRetryable(ctx context.Context, maxRetries, limit int) ([]*models.Notification, error) {
	return nil, nil
}

type mockQueue struct {
	published []int64
	err       error
}

func (q *mockQueue) Publish(ctx context.Context, job *models.NotificationJob) error {
	if q.err != nil {
		return q.err
	}
	q.published = append(q.published, job.NotificationID)
	return nil
}

func (q *mockQueue) Consume(ctx context.Context, handler queue.JobHandler, concurrency int) error {
	return nil
}
func (q *mockQueue) Length(ctx context.Context) (int64, error) { return int64(len(q.published)), nil }
func (q *mockQueue) Health(ctx context.Context) error { return nil }

// Mock notifier recording every call
type mockNotifier struct {
	calls []notifyCall
}

type notifyCall struct {
	leadType string
	leadID   int64
	subject  string
	body     string
}

func (n *mockNotifier) Notify(ctx context.Context, leadType string, leadID int64, subject, body string) {
	n.calls = append(n.calls, notifyCall{leadType, leadID, subject, body})
}

// memoryCache is an in-process ListCache with per-resource versions.
type memoryCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	versions    map[string]int64
	invalidated []string
	getErr      error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, versions: map[string]int64{}}
}

func entryKey(resource string, version int64, key string) string {
	return resource + "|" + strconv.FormatInt(version, 10) + "|" + key
}

func (c *memoryCache) Get(ctx context.Context, resource, key string, dest any) (bool, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, 0, c.getErr
	}
	version := c.versions[resource]
	raw, ok := c.entries[entryKey(resource, version, key)]
	if !ok {
		return false, version, nil
	}
	return true, version, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, resource string, version int64, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[entryKey(resource, version, key)] = raw
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, resource string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[resource]++
	c.invalidated = append(c.invalidated, resource)
	return nil
}
