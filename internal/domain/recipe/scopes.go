package recipe

import "gorm.io/gorm"

// ByAuthor keeps recipes written by authorID.
func ByAuthor(authorID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("recipes.author_id = ?", authorID)
	}
}

// ByTagSlugs keeps recipes carrying at least one of the slugs.
func ByTagSlugs(slugs []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)",
			slugs,
		)
	}
}

// FavoritedBy keeps recipes in userID's favorites.
func FavoritedBy(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("recipes.id IN (SELECT f.recipe_id FROM favorites f WHERE f.user_id = ?)", userID)
	}
}

// InCartOf keeps recipes in userID's shopping cart.
func InCartOf(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("recipes.id IN (SELECT sc.recipe_id FROM shopping_carts sc WHERE sc.user_id = ?)", userID)
	}
}

// Newest orders by publication date, newest first.
func Newest(db *gorm.DB) *gorm.DB {
	return db.Order("recipes.created_at DESC").Order("recipes.id DESC")
}

// Filters turns a list request into scopes for viewerID. ok is false when
// the request can match nothing, e.g. an anonymous favorites filter.
func Filters(req ListRequest, viewerID int64) (scopes []func(*gorm.DB) *gorm.DB, ok bool) {
	if (req.IsFavorited || req.IsInShoppingCart) && viewerID == 0 {
		return nil, false
	}

	if req.Author > 0 {
		scopes = append(scopes, ByAuthor(req.Author))
	}
	if len(req.Tags) > 0 {
		scopes = append(scopes, ByTagSlugs(req.Tags))
	}
	if req.IsFavorited {
		scopes = append(scopes, FavoritedBy(viewerID))
	}
	if req.IsInShoppingCart {
		scopes = append(scopes, InCartOf(viewerID))
	}
	return scopes, true
}
