package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"funfans-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type pair struct {
	a, b string
}

type memState struct {
	users        map[string]models.User
	follows      map[pair]time.Time
	transactions []models.Transaction
	externalRefs map[string]struct{}
	earnings     map[string]models.CreatorEarnings
	creatorTx    []models.CreatorTransaction
	unlocks      map[pair]time.Time
	contents     map[string]models.ContentItem
	likes        map[pair]time.Time
	shares       map[pair]time.Time
	reactions    map[pair]string
	comments     []models.Comment
	reports      []models.Report
	settings     *models.PlatformSettings
	plans        map[string]models.SubscriptionPlan
	packages     map[string]models.CreditPackage
	subs         map[string]models.UserSubscription
	checkouts    map[string]models.CheckoutSession
	timeouts     map[string]models.UserTimeout
	showcase     []string
	revoked      map[string]time.Time
}

func newMemState() *memState {
	return &memState{
		users:        map[string]models.User{},
		follows:      map[pair]time.Time{},
		externalRefs: map[string]struct{}{},
		earnings:     map[string]models.CreatorEarnings{},
		unlocks:      map[pair]time.Time{},
		contents:     map[string]models.ContentItem{},
		likes:        map[pair]time.Time{},
		shares:       map[pair]time.Time{},
		reactions:    map[pair]string{},
		plans:        map[string]models.SubscriptionPlan{},
		packages:     map[string]models.CreditPackage{},
		subs:         map[string]models.UserSubscription{},
		checkouts:    map[string]models.CheckoutSession{},
		timeouts:     map[string]models.UserTimeout{},
		revoked:      map[string]time.Time{},
	}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (st *memState) clone() *memState {
	c := &memState{
		users:        copyMap(st.users),
		follows:      copyMap(st.follows),
		transactions: append([]models.Transaction(nil), st.transactions...),
		externalRefs: copyMap(st.externalRefs),
		earnings:     copyMap(st.earnings),
		creatorTx:    append([]models.CreatorTransaction(nil), st.creatorTx...),
		unlocks:      copyMap(st.unlocks),
		contents:     copyMap(st.contents),
		likes:        copyMap(st.likes),
		shares:       copyMap(st.shares),
		reactions:    copyMap(st.reactions),
		comments:     append([]models.Comment(nil), st.comments...),
		reports:      append([]models.Report(nil), st.reports...),
		plans:        copyMap(st.plans),
		packages:     copyMap(st.packages),
		subs:         copyMap(st.subs),
		checkouts:    copyMap(st.checkouts),
		timeouts:     copyMap(st.timeouts),
		showcase:     append([]string(nil), st.showcase...),
		revoked:      copyMap(st.revoked),
	}
	if st.settings != nil {
		s := *st.settings
		c.settings = &s
	}
	return c
}

// MemoryStore keeps everything in process memory behind one mutex.
type MemoryStore struct {
	mu   *sync.Mutex
	st   **memState
	inTx bool
	now  func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	st := newMemState()
	defaults := models.DefaultSettings()
	st.settings = &defaults
	return &MemoryStore{mu: &sync.Mutex{}, st: &st, now: time.Now}
}

// SetClock replaces the time source used to stamp records.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.now = now
}

func (s *MemoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) state() *memState {
	return *s.st
}

func (s *MemoryStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	unlock := s.lock()
	defer unlock()

	snapshot := s.state().clone()
	tx := &MemoryStore{mu: s.mu, st: s.st, inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		*s.st = snapshot
		return err
	}
	if err := ctx.Err(); err != nil {
		*s.st = snapshot
		return err
	}
	return nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *MemoryStore) stamp(t *time.Time) {
	if t.IsZero() {
		*t = s.now()
	}
}

// Users

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	defer s.lock()()
	st := s.state()
	u.ID = newID(u.ID)
	for _, existing := range st.users {
		if strings.EqualFold(existing.Email, u.Email) || existing.ID == u.ID ||
			(u.VitrineSlug != "" && existing.VitrineSlug == u.VitrineSlug) {
			return ErrAlreadyExists
		}
	}
	s.stamp(&u.CreatedAt)
	u.UpdatedAt = u.CreatedAt
	stored := *u
	stored.Followers, stored.Following = nil, nil
	st.users[u.ID] = stored
	return nil
}

func (s *MemoryStore) withGraph(u models.User) *models.User {
	st := s.state()
	u.Followers = []string{}
	u.Following = []string{}
	for p := range st.follows {
		if p.b == u.ID {
			u.Followers = append(u.Followers, p.a)
		}
		if p.a == u.ID {
			u.Following = append(u.Following, p.b)
		}
	}
	sort.Strings(u.Followers)
	sort.Strings(u.Following)
	return &u
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.User, error) {
	defer s.lock()()
	u, ok := s.state().users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.withGraph(u), nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	defer s.lock()()
	for _, u := range s.state().users {
		if strings.EqualFold(u.Email, email) {
			return s.withGraph(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserBySlug(_ context.Context, slug string) (*models.User, error) {
	defer s.lock()()
	for _, u := range s.state().users {
		if u.VitrineSlug == slug {
			return s.withGraph(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	defer s.lock()()
	out := make([]models.User, 0, len(s.state().users))
	for _, u := range s.state().users {
		out = append(out, *s.withGraph(u))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateUser saves profile fields. Balance and role have their own paths.
func (s *MemoryStore) UpdateUser(_ context.Context, u *models.User) error {
	defer s.lock()()
	st := s.state()
	current, ok := st.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	for _, other := range st.users {
		if other.ID != u.ID && u.VitrineSlug != "" && other.VitrineSlug == u.VitrineSlug {
			return ErrAlreadyExists
		}
	}
	updated := *u
	updated.Balance = current.Balance
	updated.Role = current.Role
	updated.Email = current.Email
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = s.now()
	updated.Followers, updated.Following = nil, nil
	st.users[u.ID] = updated
	return nil
}

func (s *MemoryStore) SetUserRole(_ context.Context, id string, role models.Role) error {
	defer s.lock()()
	st := s.state()
	u, ok := st.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Role = role
	st.users[id] = u
	return nil
}

func (s *MemoryStore) Follow(_ context.Context, followerID, followeeID string) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.users[followeeID]; !ok {
		return ErrNotFound
	}
	key := pair{followerID, followeeID}
	if _, ok := st.follows[key]; !ok {
		st.follows[key] = s.now()
	}
	return nil
}

func (s *MemoryStore) Unfollow(_ context.Context, followerID, followeeID string) error {
	defer s.lock()()
	delete(s.state().follows, pair{followerID, followeeID})
	return nil
}

func (s *MemoryStore) Followers(_ context.Context, userID string) ([]string, error) {
	defer s.lock()()
	out := []string{}
	for p := range s.state().follows {
		if p.b == userID {
			out = append(out, p.a)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) Following(_ context.Context, userID string) ([]string, error) {
	defer s.lock()()
	out := []string{}
	for p := range s.state().follows {
		if p.a == userID {
			out = append(out, p.b)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Ledger

func (s *MemoryStore) AdjustBalance(_ context.Context, userID string, delta int64) (int64, error) {
	defer s.lock()()
	st := s.state()
	u, ok := st.users[userID]
	if !ok {
		return 0, ErrNotFound
	}
	if u.Balance+delta < 0 {
		return u.Balance, ErrInsufficientBalance
	}
	u.Balance += delta
	st.users[userID] = u
	return u.Balance, nil
}

func (s *MemoryStore) AppendTransaction(_ context.Context, t *models.Transaction) error {
	defer s.lock()()
	st := s.state()
	if t.ExternalRef != nil {
		if _, ok := st.externalRefs[*t.ExternalRef]; ok {
			return ErrAlreadyExists
		}
		st.externalRefs[*t.ExternalRef] = struct{}{}
	}
	t.ID = newID(t.ID)
	s.stamp(&t.CreatedAt)
	st.transactions = append(st.transactions, *t)
	return nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, userID string) ([]models.Transaction, error) {
	defer s.lock()()
	out := []models.Transaction{}
	txs := s.state().transactions
	for i := len(txs) - 1; i >= 0; i-- {
		if txs[i].UserID == userID {
			out = append(out, txs[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) AccrueEarnings(_ context.Context, creatorID string, amount decimal.Decimal, cooldown time.Duration) (*models.CreatorEarnings, error) {
	defer s.lock()()
	st := s.state()
	now := s.now()
	e, ok := st.earnings[creatorID]
	if !ok {
		e = models.CreatorEarnings{
			CreatorID:             creatorID,
			Earned:                decimal.Zero,
			WithdrawalAvailableAt: now.Add(cooldown),
			CreatedAt:             now,
		}
	}
	e.Earned = e.Earned.Add(amount)
	e.UpdatedAt = now
	st.earnings[creatorID] = e
	return &e, nil
}

func (s *MemoryStore) GetEarnings(_ context.Context, creatorID string) (*models.CreatorEarnings, error) {
	defer s.lock()()
	e, ok := s.state().earnings[creatorID]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) AppendCreatorTransaction(_ context.Context, t *models.CreatorTransaction) error {
	defer s.lock()()
	t.ID = newID(t.ID)
	s.stamp(&t.CreatedAt)
	st := s.state()
	st.creatorTx = append(st.creatorTx, *t)
	return nil
}

func (s *MemoryStore) ListCreatorTransactions(_ context.Context, creatorID string) ([]models.CreatorTransaction, error) {
	defer s.lock()()
	out := []models.CreatorTransaction{}
	txs := s.state().creatorTx
	for i := len(txs) - 1; i >= 0; i-- {
		if txs[i].CreatorID == creatorID {
			out = append(out, txs[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) GrantUnlock(_ context.Context, userID, contentID string) error {
	defer s.lock()()
	st := s.state()
	key := pair{userID, contentID}
	if _, ok := st.unlocks[key]; ok {
		return ErrAlreadyExists
	}
	st.unlocks[key] = s.now()
	return nil
}

func (s *MemoryStore) IsUnlocked(_ context.Context, userID, contentID string) (bool, error) {
	defer s.lock()()
	_, ok := s.state().unlocks[pair{userID, contentID}]
	return ok, nil
}

func (s *MemoryStore) ListUnlocked(_ context.Context, userID string) ([]string, error) {
	defer s.lock()()
	type grant struct {
		id string
		at time.Time
	}
	grants := []grant{}
	for p, at := range s.state().unlocks {
		if p.a == userID {
			grants = append(grants, grant{p.b, at})
		}
	}
	sort.Slice(grants, func(i, j int) bool {
		if grants[i].at.Equal(grants[j].at) {
			return grants[i].id < grants[j].id
		}
		return grants[i].at.Before(grants[j].at)
	})
	out := make([]string, len(grants))
	for i, g := range grants {
		out[i] = g.id
	}
	return out, nil
}

// Content

func (s *MemoryStore) CreateContent(_ context.Context, item *models.ContentItem) error {
	defer s.lock()()
	item.ID = newID(item.ID)
	s.stamp(&item.CreatedAt)
	item.UpdatedAt = item.CreatedAt
	names := NormalizeTags(append(item.TagNames, tagNames(item.Tags)...))
	item.Tags = make([]models.Tag, len(names))
	for i, n := range names {
		item.Tags[i] = models.Tag{Name: n}
	}
	item.TagNames = names
	for i := range item.Media {
		item.Media[i].ID = newID(item.Media[i].ID)
		item.Media[i].ContentID = item.ID
		item.Media[i].Position = i
	}
	stored := *item
	stored.Tags = append([]models.Tag(nil), item.Tags...)
	stored.Media = append([]models.ContentMedia(nil), item.Media...)
	s.state().contents[item.ID] = stored
	return nil
}

func tagNames(tags []models.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Name
	}
	return out
}

func (s *MemoryStore) enrich(item models.ContentItem) models.ContentItem {
	st := s.state()
	item.Tags = append([]models.Tag(nil), item.Tags...)
	item.Media = append([]models.ContentMedia(nil), item.Media...)
	item.TagNames = tagNames(item.Tags)
	item.LikedBy = []string{}
	item.SharedBy = []string{}
	item.UserReactions = map[string]string{}
	for p := range st.likes {
		if p.a == item.ID {
			item.LikedBy = append(item.LikedBy, p.b)
		}
	}
	for p := range st.shares {
		if p.a == item.ID {
			item.SharedBy = append(item.SharedBy, p.b)
		}
	}
	for p, emoji := range st.reactions {
		if p.a == item.ID {
			item.UserReactions[p.b] = emoji
		}
	}
	sort.Strings(item.LikedBy)
	sort.Strings(item.SharedBy)
	return item
}

func (s *MemoryStore) GetContent(_ context.Context, id string) (*models.ContentItem, error) {
	defer s.lock()()
	item, ok := s.state().contents[id]
	if !ok {
		return nil, ErrNotFound
	}
	enriched := s.enrich(item)
	return &enriched, nil
}

// LockContent needs no row lock: InTx already holds the store mutex.
func (s *MemoryStore) LockContent(_ context.Context, id string) (*models.ContentItem, error) {
	defer s.lock()()
	item, ok := s.state().contents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func hasTag(item models.ContentItem, tag string) bool {
	for _, t := range item.Tags {
		if t.Name == tag {
			return true
		}
	}
	return false
}

func (s *MemoryStore) ListContent(_ context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	defer s.lock()()
	tag := normalizeTag(filter.Tag)
	out := []models.ContentItem{}
	for _, item := range s.state().contents {
		if item.IsHidden && !filter.IncludeHidden {
			continue
		}
		if filter.CreatorID != "" && item.CreatorID != filter.CreatorID {
			continue
		}
		if tag != "" && !hasTag(item, tag) {
			continue
		}
		out = append(out, s.enrich(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) SetContentHidden(_ context.Context, id string, hidden bool) error {
	defer s.lock()()
	st := s.state()
	item, ok := st.contents[id]
	if !ok {
		return ErrNotFound
	}
	item.IsHidden = hidden
	item.UpdatedAt = s.now()
	st.contents[id] = item
	return nil
}

func (s *MemoryStore) HideCreatorContent(_ context.Context, creatorID string) (int64, error) {
	defer s.lock()()
	st := s.state()
	var n int64
	for id, item := range st.contents {
		if item.CreatorID == creatorID && !item.IsHidden {
			item.IsHidden = true
			st.contents[id] = item
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) DeleteContent(_ context.Context, id string) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.contents[id]; !ok {
		return ErrNotFound
	}
	delete(st.contents, id)
	return nil
}

func (s *MemoryStore) DeleteCreatorContent(_ context.Context, creatorID string) (int64, error) {
	defer s.lock()()
	st := s.state()
	var n int64
	for id, item := range st.contents {
		if item.CreatorID == creatorID {
			delete(st.contents, id)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) ToggleLike(_ context.Context, contentID, userID string) (bool, error) {
	defer s.lock()()
	st := s.state()
	if _, ok := st.contents[contentID]; !ok {
		return false, ErrNotFound
	}
	key := pair{contentID, userID}
	if _, ok := st.likes[key]; ok {
		delete(st.likes, key)
		return false, nil
	}
	st.likes[key] = s.now()
	return true, nil
}

func (s *MemoryStore) ToggleReaction(_ context.Context, contentID, userID, emoji string) (string, error) {
	defer s.lock()()
	st := s.state()
	if _, ok := st.contents[contentID]; !ok {
		return "", ErrNotFound
	}
	key := pair{contentID, userID}
	if st.reactions[key] == emoji {
		delete(st.reactions, key)
		return "", nil
	}
	st.reactions[key] = emoji
	return emoji, nil
}

func (s *MemoryStore) AddShare(_ context.Context, contentID, userID string) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.contents[contentID]; !ok {
		return ErrNotFound
	}
	key := pair{contentID, userID}
	if _, ok := st.shares[key]; !ok {
		st.shares[key] = s.now()
	}
	return nil
}

func (s *MemoryStore) ListTags(_ context.Context) ([]models.TagCount, error) {
	defer s.lock()()
	counts := map[string]int64{}
	for _, item := range s.state().contents {
		if item.IsHidden {
			continue
		}
		for _, t := range item.Tags {
			counts[t.Name]++
		}
	}
	out := make([]models.TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.TagCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out, nil
}

func (s *MemoryStore) AddComment(_ context.Context, c *models.Comment) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.contents[c.ContentID]; !ok {
		return ErrNotFound
	}
	c.ID = newID(c.ID)
	s.stamp(&c.CreatedAt)
	st.comments = append(st.comments, *c)
	return nil
}

func (s *MemoryStore) ListComments(_ context.Context, contentID string) ([]models.Comment, error) {
	defer s.lock()()
	out := []models.Comment{}
	for _, c := range s.state().comments {
		if c.ContentID == contentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateReport(_ context.Context, r *models.Report) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.contents[r.ContentID]; !ok {
		return ErrNotFound
	}
	r.ID = newID(r.ID)
	s.stamp(&r.CreatedAt)
	st.reports = append(st.reports, *r)
	return nil
}

func (s *MemoryStore) ListReports(_ context.Context) ([]models.Report, error) {
	defer s.lock()()
	out := make([]models.Report, 0, len(s.state().reports))
	reports := s.state().reports
	for i := len(reports) - 1; i >= 0; i-- {
		out = append(out, reports[i])
	}
	return out, nil
}

// Settings

func (s *MemoryStore) LockSettings(ctx context.Context) (*models.PlatformSettings, error) {
	return s.GetSettings(ctx)
}

func (s *MemoryStore) GetSettings(_ context.Context) (*models.PlatformSettings, error) {
	defer s.lock()()
	if s.state().settings == nil {
		return nil, ErrNotFound
	}
	cp := *s.state().settings
	return &cp, nil
}

func (s *MemoryStore) SaveSettings(_ context.Context, settings *models.PlatformSettings) error {
	defer s.lock()()
	cp := *settings
	cp.ID = models.SettingsID
	cp.UpdatedAt = s.now()
	s.state().settings = &cp
	return nil
}

// Catalog and subscriptions

func (s *MemoryStore) ListPlans(_ context.Context) ([]models.SubscriptionPlan, error) {
	defer s.lock()()
	out := make([]models.SubscriptionPlan, 0, len(s.state().plans))
	for _, p := range s.state().plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price.Equal(out[j].Price) {
			return out[i].ID < out[j].ID
		}
		return out[i].Price.LessThan(out[j].Price)
	})
	return out, nil
}

func (s *MemoryStore) GetPlan(_ context.Context, id string) (*models.SubscriptionPlan, error) {
	defer s.lock()()
	p, ok := s.state().plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) SavePlan(_ context.Context, p *models.SubscriptionPlan) error {
	defer s.lock()()
	p.UpdatedAt = s.now()
	s.state().plans[p.ID] = *p
	return nil
}

func (s *MemoryStore) ListPackages(_ context.Context) ([]models.CreditPackage, error) {
	defer s.lock()()
	out := make([]models.CreditPackage, 0, len(s.state().packages))
	for _, p := range s.state().packages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Credits == out[j].Credits {
			return out[i].ID < out[j].ID
		}
		return out[i].Credits < out[j].Credits
	})
	return out, nil
}

func (s *MemoryStore) GetPackage(_ context.Context, id string) (*models.CreditPackage, error) {
	defer s.lock()()
	p, ok := s.state().packages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) SavePackage(_ context.Context, p *models.CreditPackage) error {
	defer s.lock()()
	p.UpdatedAt = s.now()
	s.state().packages[p.ID] = *p
	return nil
}

func (s *MemoryStore) GetUserSubscription(_ context.Context, userID string) (*models.UserSubscription, error) {
	defer s.lock()()
	sub, ok := s.state().subs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &sub, nil
}

func (s *MemoryStore) SaveUserSubscription(_ context.Context, sub *models.UserSubscription) error {
	defer s.lock()()
	st := s.state()
	if existing, ok := st.subs[sub.UserID]; ok {
		sub.CreatedAt = existing.CreatedAt
	}
	s.stamp(&sub.CreatedAt)
	sub.UpdatedAt = s.now()
	st.subs[sub.UserID] = *sub
	return nil
}

func (s *MemoryStore) DeleteUserSubscription(_ context.Context, userID string) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.subs[userID]; !ok {
		return ErrNotFound
	}
	delete(st.subs, userID)
	return nil
}

func (s *MemoryStore) CreateCheckoutSession(_ context.Context, cs *models.CheckoutSession) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.checkouts[cs.ID]; ok {
		return ErrAlreadyExists
	}
	if cs.Status == "" {
		cs.Status = models.CheckoutPending
	}
	s.stamp(&cs.CreatedAt)
	cs.UpdatedAt = cs.CreatedAt
	st.checkouts[cs.ID] = *cs
	return nil
}

func (s *MemoryStore) GetCheckoutSession(_ context.Context, id string) (*models.CheckoutSession, error) {
	defer s.lock()()
	cs, ok := s.state().checkouts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cs, nil
}

func (s *MemoryStore) UpdateCheckoutStatus(_ context.Context, id string, from, to models.CheckoutStatus) error {
	defer s.lock()()
	st := s.state()
	cs, ok := st.checkouts[id]
	if !ok {
		return ErrNotFound
	}
	if cs.Status != from {
		return ErrConflict
	}
	now := s.now()
	cs.Status = to
	cs.UpdatedAt = now
	if to == models.CheckoutCompleted {
		cs.CompletedAt = &now
	}
	st.checkouts[id] = cs
	return nil
}

// Moderation

func (s *MemoryStore) SaveTimeout(_ context.Context, t *models.UserTimeout) error {
	defer s.lock()()
	st := s.state()
	if _, ok := st.users[t.UserID]; !ok {
		return ErrNotFound
	}
	s.stamp(&t.CreatedAt)
	t.UpdatedAt = s.now()
	st.timeouts[t.UserID] = *t
	return nil
}

func (s *MemoryStore) GetTimeout(_ context.Context, userID string) (*models.UserTimeout, error) {
	defer s.lock()()
	t, ok := s.state().timeouts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) SetShowcase(_ context.Context, userIDs []string) error {
	defer s.lock()()
	st := s.state()
	for _, id := range userIDs {
		if _, ok := st.users[id]; !ok {
			return ErrNotFound
		}
	}
	st.showcase = dedupe(userIDs)
	return nil
}

func (s *MemoryStore) GetShowcase(_ context.Context) ([]string, error) {
	defer s.lock()()
	return append([]string{}, s.state().showcase...), nil
}

// Auth

func (s *MemoryStore) RevokeToken(_ context.Context, jti string, expiresAt time.Time) error {
	defer s.lock()()
	s.state().revoked[jti] = expiresAt
	return nil
}

func (s *MemoryStore) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	defer s.lock()()
	_, ok := s.state().revoked[jti]
	return ok, nil
}

func dedupe(ids []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
