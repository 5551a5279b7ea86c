package store

import (
	"context"
	"errors"
	"time"

	"funfans-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the postgres implementation of Store.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return err
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, now: s.now})
	})
}

// Users

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = newID(u.ID)
	return translate(s.conn(ctx).Create(u).Error)
}

func (s *GormStore) loadGraph(ctx context.Context, u *models.User) error {
	u.Followers = []string{}
	u.Following = []string{}
	if err := s.conn(ctx).Model(&models.Follow{}).
		Where("followee_id = ?", u.ID).Order("follower_id").
		Pluck("follower_id", &u.Followers).Error; err != nil {
		return err
	}
	return s.conn(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", u.ID).Order("followee_id").
		Pluck("followee_id", &u.Following).Error
}

func (s *GormStore) findUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).Where(query, arg).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.loadGraph(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.findUser(ctx, "id = ?", id)
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, "LOWER(email) = LOWER(?)", email)
}

func (s *GormStore) GetUserBySlug(ctx context.Context, slug string) (*models.User, error) {
	return s.findUser(ctx, "vitrine_slug = ?", slug)
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.conn(ctx).Order("created_at, id").Find(&users).Error; err != nil {
		return nil, err
	}
	var follows []models.Follow
	if err := s.conn(ctx).Order("created_at").Find(&follows).Error; err != nil {
		return nil, err
	}
	index := make(map[string]int, len(users))
	for i := range users {
		users[i].Followers = []string{}
		users[i].Following = []string{}
		index[users[i].ID] = i
	}
	for _, f := range follows {
		if i, ok := index[f.FolloweeID]; ok {
			users[i].Followers = append(users[i].Followers, f.FollowerID)
		}
		if i, ok := index[f.FollowerID]; ok {
			users[i].Following = append(users[i].Following, f.FolloweeID)
		}
	}
	return users, nil
}

// UpdateUser saves profile and credential columns. Balance, role and email
// are never written here.
func (s *GormStore) UpdateUser(ctx context.Context, u *models.User) error {
	res := s.conn(ctx).Model(&models.User{}).Where("id = ?", u.ID).
		Select("username", "profile_picture_url", "full_name", "age", "date_of_birth",
			"gender", "phone", "vitrine_slug", "password", "stripe_customer_id",
			"reset_code_hash", "reset_code_expires_at", "updated_at").
		Updates(&models.User{
			Username:           u.Username,
			ProfilePictureURL:  u.ProfilePictureURL,
			FullName:           u.FullName,
			Age:                u.Age,
			DateOfBirth:        u.DateOfBirth,
			Gender:             u.Gender,
			Phone:              u.Phone,
			VitrineSlug:        u.VitrineSlug,
			Password:           u.Password,
			StripeCustomerID:   u.StripeCustomerID,
			ResetCodeHash:      u.ResetCodeHash,
			ResetCodeExpiresAt: u.ResetCodeExpiresAt,
			UpdatedAt:          s.now(),
		})
	return affected(res)
}

func (s *GormStore) SetUserRole(ctx context.Context, id string, role models.Role) error {
	return affected(s.conn(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role))
}

func (s *GormStore) exists(ctx context.Context, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := s.conn(ctx).Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *GormStore) Follow(ctx context.Context, followerID, followeeID string) error {
	ok, err := s.exists(ctx, &models.User{}, "id = ?", followeeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return translate(s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error)
}

func (s *GormStore) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return s.conn(ctx).Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func (s *GormStore) Followers(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.conn(ctx).Model(&models.Follow{}).Where("followee_id = ?", userID).
		Order("follower_id").Pluck("follower_id", &ids).Error
	return ids, err
}

func (s *GormStore) Following(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.conn(ctx).Model(&models.Follow{}).Where("follower_id = ?", userID).
		Order("followee_id").Pluck("followee_id", &ids).Error
	return ids, err
}

// Ledger

// AdjustBalance applies delta with a conditional update so the balance can
// never go below zero, even with concurrent writers.
func (s *GormStore) AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	res := s.conn(ctx).Model(&models.User{}).
		Where("id = ? AND balance + ? >= 0", userID, delta).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}

	var u models.User
	if err := s.conn(ctx).Select("id", "balance").Where("id = ?", userID).First(&u).Error; err != nil {
		return 0, translate(err)
	}
	if res.RowsAffected == 0 {
		return u.Balance, ErrInsufficientBalance
	}
	return u.Balance, nil
}

func (s *GormStore) AppendTransaction(ctx context.Context, t *models.Transaction) error {
	t.ID = newID(t.ID)
	return translate(s.conn(ctx).Create(t).Error)
}

func (s *GormStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := s.conn(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

// AccrueEarnings upserts the creator's running total. The withdrawal date is
// set by the first accrual and kept afterwards.
func (s *GormStore) AccrueEarnings(ctx context.Context, creatorID string, amount decimal.Decimal, cooldown time.Duration) (*models.CreatorEarnings, error) {
	now := s.now()
	err := s.conn(ctx).Exec(`INSERT INTO creator_earnings (creator_id, earned, withdrawal_available_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (creator_id) DO UPDATE SET earned = creator_earnings.earned + EXCLUDED.earned, updated_at = EXCLUDED.updated_at`,
		creatorID, amount, now.Add(cooldown), now, now).Error
	if err != nil {
		return nil, translate(err)
	}
	return s.GetEarnings(ctx, creatorID)
}

func (s *GormStore) GetEarnings(ctx context.Context, creatorID string) (*models.CreatorEarnings, error) {
	var e models.CreatorEarnings
	if err := s.conn(ctx).Where("creator_id = ?", creatorID).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *GormStore) AppendCreatorTransaction(ctx context.Context, t *models.CreatorTransaction) error {
	t.ID = newID(t.ID)
	return translate(s.conn(ctx).Create(t).Error)
}

func (s *GormStore) ListCreatorTransactions(ctx context.Context, creatorID string) ([]models.CreatorTransaction, error) {
	txs := []models.CreatorTransaction{}
	err := s.conn(ctx).Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (s *GormStore) GrantUnlock(ctx context.Context, userID, contentID string) error {
	return translate(s.conn(ctx).Create(&models.Unlock{UserID: userID, ContentID: contentID}).Error)
}

func (s *GormStore) IsUnlocked(ctx context.Context, userID, contentID string) (bool, error) {
	return s.exists(ctx, &models.Unlock{}, "user_id = ? AND content_id = ?", userID, contentID)
}

func (s *GormStore) ListUnlocked(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.conn(ctx).Model(&models.Unlock{}).Where("user_id = ?", userID).
		Order("created_at, content_id").Pluck("content_id", &ids).Error
	return ids, err
}

// Content

func (s *GormStore) CreateContent(ctx context.Context, item *models.ContentItem) error {
	item.ID = newID(item.ID)
	names := NormalizeTags(append(item.TagNames, tagNames(item.Tags)...))
	for i := range item.Media {
		item.Media[i].ID = newID(item.Media[i].ID)
		item.Media[i].ContentID = item.ID
		item.Media[i].Position = i
	}

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]models.Tag, 0, len(names))
		for _, name := range names {
			var tag models.Tag
			err := tx.Where(models.Tag{Name: name}).
				Attrs(models.Tag{ID: uuid.NewString()}).
				FirstOrCreate(&tag).Error
			if err != nil {
				return translate(err)
			}
			tags = append(tags, tag)
		}
		item.Tags = tags
		item.TagNames = names
		return translate(tx.Create(item).Error)
	})
}

func (s *GormStore) contentQuery(ctx context.Context) *gorm.DB {
	return s.conn(ctx).Model(&models.ContentItem{}).
		Preload("Tags").
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

// enrich fills the engagement fields of items with one query per relation.
func (s *GormStore) enrich(ctx context.Context, items []models.ContentItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	index := make(map[string]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].TagNames = tagNames(items[i].Tags)
		items[i].LikedBy = []string{}
		items[i].SharedBy = []string{}
		items[i].UserReactions = map[string]string{}
	}

	var likes []models.Like
	if err := s.conn(ctx).Where("content_id IN ?", ids).Order("user_id").Find(&likes).Error; err != nil {
		return err
	}
	for _, l := range likes {
		it := &items[index[l.ContentID]]
		it.LikedBy = append(it.LikedBy, l.UserID)
	}

	var shares []models.Share
	if err := s.conn(ctx).Where("content_id IN ?", ids).Order("user_id").Find(&shares).Error; err != nil {
		return err
	}
	for _, sh := range shares {
		it := &items[index[sh.ContentID]]
		it.SharedBy = append(it.SharedBy, sh.UserID)
	}

	var reactions []models.Reaction
	if err := s.conn(ctx).Where("content_id IN ?", ids).Find(&reactions).Error; err != nil {
		return err
	}
	for _, r := range reactions {
		items[index[r.ContentID]].UserReactions[r.UserID] = r.Emoji
	}
	return nil
}

func (s *GormStore) GetContent(ctx context.Context, id string) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := s.contentQuery(ctx).Where("content_items.id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	items := []models.ContentItem{item}
	if err := s.enrich(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *GormStore) LockContent(ctx context.Context, id string) (*models.ContentItem, error) {
	var item models.ContentItem
	err := s.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStore) ListContent(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	q := s.contentQuery(ctx)
	if !filter.IncludeHidden {
		q = q.Where("content_items.is_hidden = ?", false)
	}
	if filter.CreatorID != "" {
		q = q.Where("content_items.creator_id = ?", filter.CreatorID)
	}
	if tag := normalizeTag(filter.Tag); tag != "" {
		q = q.Where("content_items.id IN (?)", s.conn(ctx).Table("content_tags").
			Select("content_tags.content_item_id").
			Joins("JOIN tags ON tags.id = content_tags.tag_id").
			Where("tags.name = ?", tag))
	}

	items := []models.ContentItem{}
	if err := q.Order("content_items.created_at DESC, content_items.id").Find(&items).Error; err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) SetContentHidden(ctx context.Context, id string, hidden bool) error {
	return affected(s.conn(ctx).Model(&models.ContentItem{}).Where("id = ?", id).Update("is_hidden", hidden))
}

func (s *GormStore) HideCreatorContent(ctx context.Context, creatorID string) (int64, error) {
	res := s.conn(ctx).Model(&models.ContentItem{}).
		Where("creator_id = ? AND is_hidden = ?", creatorID, false).
		Update("is_hidden", true)
	return res.RowsAffected, res.Error
}

func (s *GormStore) DeleteContent(ctx context.Context, id string) error {
	return affected(s.conn(ctx).Where("id = ?", id).Delete(&models.ContentItem{}))
}

func (s *GormStore) DeleteCreatorContent(ctx context.Context, creatorID string) (int64, error) {
	res := s.conn(ctx).Where("creator_id = ?", creatorID).Delete(&models.ContentItem{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) requireContent(ctx context.Context, id string) error {
	ok, err := s.exists(ctx, &models.ContentItem{}, "id = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ToggleLike(ctx context.Context, contentID, userID string) (bool, error) {
	if err := s.requireContent(ctx, contentID); err != nil {
		return false, err
	}
	res := s.conn(ctx).Where("content_id = ? AND user_id = ?", contentID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err := s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{ContentID: contentID, UserID: userID}).Error
	return err == nil, translate(err)
}

func (s *GormStore) ToggleReaction(ctx context.Context, contentID, userID, emoji string) (string, error) {
	if err := s.requireContent(ctx, contentID); err != nil {
		return "", err
	}
	res := s.conn(ctx).Where("content_id = ? AND user_id = ? AND emoji = ?", contentID, userID, emoji).
		Delete(&models.Reaction{})
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected > 0 {
		return "", nil
	}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"emoji", "updated_at"}),
	}).Create(&models.Reaction{ContentID: contentID, UserID: userID, Emoji: emoji}).Error
	if err != nil {
		return "", translate(err)
	}
	return emoji, nil
}

func (s *GormStore) AddShare(ctx context.Context, contentID, userID string) error {
	if err := s.requireContent(ctx, contentID); err != nil {
		return err
	}
	return translate(s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Share{ContentID: contentID, UserID: userID}).Error)
}

func (s *GormStore) ListTags(ctx context.Context) ([]models.TagCount, error) {
	counts := []models.TagCount{}
	err := s.conn(ctx).Raw(`SELECT tags.name AS name, COUNT(*) AS count
		FROM tags
		JOIN content_tags ON content_tags.tag_id = tags.id
		JOIN content_items ON content_items.id = content_tags.content_item_id
		WHERE content_items.is_hidden = false AND content_items.deleted_at IS NULL
		GROUP BY tags.name
		ORDER BY count DESC, tags.name`).Scan(&counts).Error
	return counts, err
}

func (s *GormStore) AddComment(ctx context.Context, c *models.Comment) error {
	if err := s.requireContent(ctx, c.ContentID); err != nil {
		return err
	}
	c.ID = newID(c.ID)
	return translate(s.conn(ctx).Create(c).Error)
}

func (s *GormStore) ListComments(ctx context.Context, contentID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.conn(ctx).Where("content_id = ?", contentID).Order("created_at").Find(&comments).Error
	return comments, err
}

func (s *GormStore) CreateReport(ctx context.Context, r *models.Report) error {
	if err := s.requireContent(ctx, r.ContentID); err != nil {
		return err
	}
	r.ID = newID(r.ID)
	return translate(s.conn(ctx).Create(r).Error)
}

func (s *GormStore) ListReports(ctx context.Context) ([]models.Report, error) {
	reports := []models.Report{}
	err := s.conn(ctx).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

// Settings

func (s *GormStore) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	if err := s.conn(ctx).First(&settings, models.SettingsID).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (s *GormStore) LockSettings(ctx context.Context) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	if err := s.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&settings, models.SettingsID).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (s *GormStore) SaveSettings(ctx context.Context, settings *models.PlatformSettings) error {
	settings.ID = models.SettingsID
	return s.conn(ctx).Save(settings).Error
}

// Catalog and subscriptions

func (s *GormStore) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	plans := []models.SubscriptionPlan{}
	err := s.conn(ctx).Order("price, id").Find(&plans).Error
	return plans, err
}

func (s *GormStore) GetPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	var p models.SubscriptionPlan
	if err := s.conn(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) SavePlan(ctx context.Context, p *models.SubscriptionPlan) error {
	return s.conn(ctx).Save(p).Error
}

func (s *GormStore) ListPackages(ctx context.Context) ([]models.CreditPackage, error) {
	pkgs := []models.CreditPackage{}
	err := s.conn(ctx).Order("credits, id").Find(&pkgs).Error
	return pkgs, err
}

func (s *GormStore) GetPackage(ctx context.Context, id string) (*models.CreditPackage, error) {
	var p models.CreditPackage
	if err := s.conn(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) SavePackage(ctx context.Context, p *models.CreditPackage) error {
	return s.conn(ctx).Save(p).Error
}

func (s *GormStore) GetUserSubscription(ctx context.Context, userID string) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	if err := s.conn(ctx).Where("user_id = ?", userID).First(&sub).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

// SaveUserSubscription upserts on user_id, so the latest write wins.
func (s *GormStore) SaveUserSubscription(ctx context.Context, sub *models.UserSubscription) error {
	return translate(s.conn(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plan_id", "name", "price", "currency", "credits", "features",
			"renews_on", "payment_method", "stripe_subscription_id", "updated_at",
		}),
	}).Create(sub).Error)
}

func (s *GormStore) DeleteUserSubscription(ctx context.Context, userID string) error {
	return affected(s.conn(ctx).Where("user_id = ?", userID).Delete(&models.UserSubscription{}))
}

func (s *GormStore) CreateCheckoutSession(ctx context.Context, cs *models.CheckoutSession) error {
	if cs.Status == "" {
		cs.Status = models.CheckoutPending
	}
	return translate(s.conn(ctx).Create(cs).Error)
}

func (s *GormStore) GetCheckoutSession(ctx context.Context, id string) (*models.CheckoutSession, error) {
	var cs models.CheckoutSession
	if err := s.conn(ctx).Where("id = ?", id).First(&cs).Error; err != nil {
		return nil, translate(err)
	}
	return &cs, nil
}

// UpdateCheckoutStatus moves a session from one status to another. A session
// that is no longer in status from yields ErrConflict.
func (s *GormStore) UpdateCheckoutStatus(ctx context.Context, id string, from, to models.CheckoutStatus) error {
	now := s.now()
	values := map[string]interface{}{"status": to, "updated_at": now}
	if to == models.CheckoutCompleted {
		values["completed_at"] = now
	}
	res := s.conn(ctx).Model(&models.CheckoutSession{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	ok, err := s.exists(ctx, &models.CheckoutSession{}, "id = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return ErrConflict
}

// Moderation

func (s *GormStore) SaveTimeout(ctx context.Context, t *models.UserTimeout) error {
	ok, err := s.exists(ctx, &models.User{}, "id = ?", t.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return translate(s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"end_time", "message", "updated_at"}),
	}).Create(t).Error)
}

func (s *GormStore) GetTimeout(ctx context.Context, userID string) (*models.UserTimeout, error) {
	var t models.UserTimeout
	if err := s.conn(ctx).Where("user_id = ?", userID).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormStore) SetShowcase(ctx context.Context, userIDs []string) error {
	ids := dedupe(userIDs)
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var n int64
			if err := tx.Model(&models.User{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
				return err
			}
			if int(n) != len(ids) {
				return ErrNotFound
			}
		}
		if err := tx.Where("1 = 1").Delete(&models.ShowcaseEntry{}).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		entries := make([]models.ShowcaseEntry, len(ids))
		for i, id := range ids {
			entries[i] = models.ShowcaseEntry{UserID: id, Position: i}
		}
		return tx.Create(&entries).Error
	})
}

func (s *GormStore) GetShowcase(ctx context.Context) ([]string, error) {
	ids := []string{}
	err := s.conn(ctx).Model(&models.ShowcaseEntry{}).Order("position").Pluck("user_id", &ids).Error
	return ids, err
}

// Auth

func (s *GormStore) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func (s *GormStore) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.exists(ctx, &models.RevokedToken{}, "jti = ?", jti)
}
