package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to new transactions whose note
// matches a glob pattern.
type CategoryRule struct {
	DefaultModel
	UserID     string `gorm:"index"`
	CategoryID uuid.UUID
	Category   Category `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Priority   uint
	Match      string
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return fieldError("match", ErrCategoryRuleMatchEmpty)
	}

	return nil
}

func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)
	return checkCategory(tx, r.UserID, &r.CategoryID)
}

func (r *CategoryRule) BeforeUpdate(tx *gorm.DB) error {
	return checkCategory(tx, r.UserID, &r.CategoryID)
}

// Matches reports whether the note matches the pattern of the rule.
// Matching is case insensitive.
func (r CategoryRule) Matches(note string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(note))
}

// MatchCategory returns the category of the first rule of the user that
// matches the note, ordered by priority. It returns nil if no rule matches.
func MatchCategory(db *gorm.DB, userID, note string) (*uuid.UUID, error) {
	if strings.TrimSpace(note) == "" {
		return nil, nil
	}

	var rules []CategoryRule
	err := db.Scopes(OwnedBy(userID)).Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Matches(note) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
