// Package testutil provides an in-memory implementation of every repository
// interface. It mirrors the gorm repositories: missing rows surface as
// gorm.ErrRecordNotFound, unique violations as the matching domain error,
// and deletes cascade like the foreign keys declared on the entities.
package testutil

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type Store struct {
	mu sync.Mutex

	users       map[uint]entities.User
	recipes     map[uint]entities.Recipe
	links       []entities.RecipeCategory
	ingredients map[uint]entities.Ingredient
	steps       map[uint]entities.Step
	reviews     map[uint]entities.Review
	categories  map[uint]entities.Category

	seq   map[string]uint
	clock time.Time
}

func NewStore() *Store {
	return &Store{
		users:       make(map[uint]entities.User),
		recipes:     make(map[uint]entities.Recipe),
		ingredients: make(map[uint]entities.Ingredient),
		steps:       make(map[uint]entities.Step),
		reviews:     make(map[uint]entities.Review),
		categories:  make(map[uint]entities.Category),
		seq:         make(map[string]uint),
		clock:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *Store) nextID(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

// now advances a fake clock so every write gets a strictly later timestamp.
func (s *Store) now() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func sortedKeys[T any](m map[uint]T) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func matches(filter *uint, value uint) bool {
	return filter == nil || *filter == value
}

// bare copies strip every relation so stored rows never alias caller data.

func bareUser(u entities.User) entities.User {
	u.Recipes, u.Reviews = nil, nil
	return u
}

func bareRecipe(r entities.Recipe) entities.Recipe {
	r.User, r.Categories, r.Ingredients, r.Steps, r.Reviews = nil, nil, nil, nil, nil
	return r
}

func bareIngredient(i entities.Ingredient) entities.Ingredient {
	i.Recipe = nil
	return i
}

func bareStep(st entities.Step) entities.Step {
	st.Recipe = nil
	return st
}

func bareReview(r entities.Review) entities.Review {
	r.User, r.Recipe = nil, nil
	return r
}

func bareCategory(c entities.Category) entities.Category {
	c.Recipes = nil
	return c
}

func (s *Store) userPtr(id uint) *entities.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &u
}

func (s *Store) recipePtr(id uint) *entities.Recipe {
	r, ok := s.recipes[id]
	if !ok {
		return nil
	}
	return &r
}

func (s *Store) recipesOf(userID uint) []entities.Recipe {
	recipes := []entities.Recipe{}
	for _, id := range sortedKeys(s.recipes) {
		if s.recipes[id].UserID == userID {
			recipes = append(recipes, s.recipes[id])
		}
	}
	return recipes
}

func (s *Store) reviewsWhere(keep func(entities.Review) bool) []entities.Review {
	reviews := []entities.Review{}
	for _, id := range sortedKeys(s.reviews) {
		if keep(s.reviews[id]) {
			reviews = append(reviews, s.reviews[id])
		}
	}
	return reviews
}

func (s *Store) hydrateUser(u entities.User) entities.User {
	u.Recipes = s.recipesOf(u.ID)
	u.Reviews = s.reviewsWhere(func(r entities.Review) bool { return r.UserID == u.ID })
	return u
}

func (s *Store) hydrateRecipe(r entities.Recipe) entities.Recipe {
	r.User = s.userPtr(r.UserID)
	r.Categories = []entities.RecipeCategory{}
	for _, link := range s.links {
		if link.RecipeID != r.ID {
			continue
		}
		if c, ok := s.categories[link.CategoryID]; ok {
			link.Category = &c
		}
		r.Categories = append(r.Categories, link)
	}
	r.Ingredients = []entities.Ingredient{}
	for _, id := range sortedKeys(s.ingredients) {
		if s.ingredients[id].RecipeID == r.ID {
			r.Ingredients = append(r.Ingredients, s.ingredients[id])
		}
	}
	r.Steps = []entities.Step{}
	for _, id := range sortedKeys(s.steps) {
		if s.steps[id].RecipeID == r.ID {
			r.Steps = append(r.Steps, s.steps[id])
		}
	}
	r.Reviews = s.reviewsWhere(func(rv entities.Review) bool { return rv.RecipeID == r.ID })
	return r
}

func (s *Store) hydrateCategory(c entities.Category) entities.Category {
	c.Recipes = []entities.RecipeCategory{}
	for _, link := range s.links {
		if link.CategoryID != c.ID {
			continue
		}
		link.Recipe = s.recipePtr(link.RecipeID)
		c.Recipes = append(c.Recipes, link)
	}
	return c
}

func (s *Store) hydrateReview(r entities.Review) entities.Review {
	r.User = s.userPtr(r.UserID)
	r.Recipe = s.recipePtr(r.RecipeID)
	return r
}

// Users

func (s *Store) emailTaken(email string, except uint) bool {
	for id, u := range s.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTaken(user.Email, 0) {
		return domain.ErrEmailTaken
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	user.ID = s.nextID("users")
	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = bareUser(*user)
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u = s.hydrateUser(u)
	return &u, nil
}

func (s *Store) FindUser(ctx context.Context, name *string, email *string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sortedKeys(s.users) {
		u := s.users[id]
		if name != nil && u.Name != *name {
			continue
		}
		if email != nil && u.Email != *email {
			continue
		}
		return &u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *Store) GetUsers(ctx context.Context, filter domain.UserFilter) ([]entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []entities.User{}
	for _, id := range sortedKeys(s.users) {
		if matches(filter.ID, id) {
			users = append(users, s.hydrateUser(s.users[id]))
		}
	}
	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if s.emailTaken(user.Email, user.ID) {
		return domain.ErrEmailTaken
	}
	user.UpdatedAt = s.now()
	s.users[user.ID] = bareUser(*user)
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, recipe := range s.recipesOf(id) {
		s.deleteRecipe(recipe.ID)
	}
	for rid, r := range s.reviews {
		if r.UserID == id {
			delete(s.reviews, rid)
		}
	}
	delete(s.users, id)
	return nil
}

// Categories

func (s *Store) categoryTaken(name string, except uint) bool {
	for id, c := range s.categories {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) CreateCategory(ctx context.Context, category *entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.categoryTaken(category.Name, 0) {
		return domain.ErrCategoryExists
	}
	category.ID = s.nextID("categories")
	now := s.now()
	category.CreatedAt, category.UpdatedAt = now, now
	s.categories[category.ID] = bareCategory(*category)
	return nil
}

func (s *Store) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c = s.hydrateCategory(c)
	return &c, nil
}

func (s *Store) GetCategories(ctx context.Context, filter domain.CategoryFilter) ([]entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := []entities.Category{}
	for _, id := range sortedKeys(s.categories) {
		if matches(filter.ID, id) {
			categories = append(categories, s.hydrateCategory(s.categories[id]))
		}
	}
	return categories, nil
}

func (s *Store) CountCategories(ctx context.Context, ids []uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, id := range ids {
		if _, ok := s.categories[id]; ok {
			count++
		}
	}
	return count, nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if s.categoryTaken(category.Name, category.ID) {
		return domain.ErrCategoryExists
	}
	category.UpdatedAt = s.now()
	s.categories[category.ID] = bareCategory(*category)
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	links := s.links[:0]
	for _, link := range s.links {
		if link.CategoryID != id {
			links = append(links, link)
		}
	}
	s.links = links
	delete(s.categories, id)
	return nil
}

// Recipes

func (s *Store) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[recipe.UserID]; !ok {
		return fmt.Errorf("recipes: user %d violates foreign key", recipe.UserID)
	}
	for _, link := range recipe.Categories {
		if _, ok := s.categories[link.CategoryID]; !ok {
			return fmt.Errorf("recipe_categories: category %d violates foreign key", link.CategoryID)
		}
	}

	recipe.ID = s.nextID("recipes")
	now := s.now()
	recipe.CreatedAt, recipe.UpdatedAt = now, now
	s.recipes[recipe.ID] = bareRecipe(*recipe)

	for i := range recipe.Categories {
		link := &recipe.Categories[i]
		link.RecipeID = recipe.ID
		link.AssignedAt = now
		s.links = append(s.links, entities.RecipeCategory{
			RecipeID:   link.RecipeID,
			CategoryID: link.CategoryID,
			AssignedAt: link.AssignedAt,
		})
	}
	for i := range recipe.Ingredients {
		ingredient := &recipe.Ingredients[i]
		ingredient.ID = s.nextID("ingredients")
		ingredient.RecipeID = recipe.ID
		ingredient.CreatedAt, ingredient.UpdatedAt = now, now
		s.ingredients[ingredient.ID] = bareIngredient(*ingredient)
	}
	for i := range recipe.Steps {
		step := &recipe.Steps[i]
		step.ID = s.nextID("steps")
		step.RecipeID = recipe.ID
		step.CreatedAt, step.UpdatedAt = now, now
		s.steps[step.ID] = bareStep(*step)
	}
	return nil
}

func (s *Store) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r = s.hydrateRecipe(r)
	return &r, nil
}

func (s *Store) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipes := []entities.Recipe{}
	for _, id := range sortedKeys(s.recipes) {
		r := s.recipes[id]
		if !matches(filter.ID, r.ID) || !matches(filter.UserID, r.UserID) {
			continue
		}
		if filter.CategoryID != nil && !s.linked(r.ID, *filter.CategoryID) {
			continue
		}
		recipes = append(recipes, s.hydrateRecipe(r))
	}
	return recipes, nil
}

func (s *Store) linked(recipeID, categoryID uint) bool {
	for _, link := range s.links {
		if link.RecipeID == recipeID && link.CategoryID == categoryID {
			return true
		}
	}
	return false
}

func (s *Store) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[recipe.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	recipe.UpdatedAt = s.now()
	s.recipes[recipe.ID] = bareRecipe(*recipe)
	return nil
}

func (s *Store) DeleteRecipe(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.deleteRecipe(id)
	return nil
}

func (s *Store) deleteRecipe(id uint) {
	for iid, i := range s.ingredients {
		if i.RecipeID == id {
			delete(s.ingredients, iid)
		}
	}
	for sid, st := range s.steps {
		if st.RecipeID == id {
			delete(s.steps, sid)
		}
	}
	for rid, r := range s.reviews {
		if r.RecipeID == id {
			delete(s.reviews, rid)
		}
	}
	links := s.links[:0]
	for _, link := range s.links {
		if link.RecipeID != id {
			links = append(links, link)
		}
	}
	s.links = links
	delete(s.recipes, id)
}

// Ingredients

func (s *Store) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[ingredient.RecipeID]; !ok {
		return fmt.Errorf("ingredients: recipe %d violates foreign key", ingredient.RecipeID)
	}
	ingredient.ID = s.nextID("ingredients")
	now := s.now()
	ingredient.CreatedAt, ingredient.UpdatedAt = now, now
	s.ingredients[ingredient.ID] = bareIngredient(*ingredient)
	return nil
}

func (s *Store) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	i.Recipe = s.recipePtr(i.RecipeID)
	return &i, nil
}

func (s *Store) GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]entities.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ingredients := []entities.Ingredient{}
	for _, id := range sortedKeys(s.ingredients) {
		i := s.ingredients[id]
		if matches(filter.ID, i.ID) && matches(filter.RecipeID, i.RecipeID) {
			i.Recipe = s.recipePtr(i.RecipeID)
			ingredients = append(ingredients, i)
		}
	}
	return ingredients, nil
}

func (s *Store) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ingredients[ingredient.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	ingredient.UpdatedAt = s.now()
	s.ingredients[ingredient.ID] = bareIngredient(*ingredient)
	return nil
}

func (s *Store) DeleteIngredient(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ingredients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.ingredients, id)
	return nil
}

// Steps

func (s *Store) CreateStep(ctx context.Context, step *entities.Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[step.RecipeID]; !ok {
		return fmt.Errorf("steps: recipe %d violates foreign key", step.RecipeID)
	}
	step.ID = s.nextID("steps")
	now := s.now()
	step.CreatedAt, step.UpdatedAt = now, now
	s.steps[step.ID] = bareStep(*step)
	return nil
}

func (s *Store) GetStepByID(ctx context.Context, id uint) (*entities.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.steps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	st.Recipe = s.recipePtr(st.RecipeID)
	return &st, nil
}

func (s *Store) GetSteps(ctx context.Context, filter domain.StepFilter) ([]entities.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	steps := []entities.Step{}
	for _, id := range sortedKeys(s.steps) {
		st := s.steps[id]
		if matches(filter.ID, st.ID) && matches(filter.RecipeID, st.RecipeID) {
			st.Recipe = s.recipePtr(st.RecipeID)
			steps = append(steps, st)
		}
	}
	return steps, nil
}

func (s *Store) UpdateStep(ctx context.Context, step *entities.Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.steps[step.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	step.UpdatedAt = s.now()
	s.steps[step.ID] = bareStep(*step)
	return nil
}

func (s *Store) DeleteStep(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.steps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.steps, id)
	return nil
}

// Reviews

func (s *Store) CreateReview(ctx context.Context, review *entities.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[review.RecipeID]; !ok {
		return fmt.Errorf("reviews: recipe %d violates foreign key", review.RecipeID)
	}
	for _, existing := range s.reviews {
		if existing.UserID == review.UserID && existing.RecipeID == review.RecipeID {
			return domain.ErrDuplicateReview
		}
	}
	review.ID = s.nextID("reviews")
	now := s.now()
	review.CreatedAt, review.UpdatedAt = now, now
	s.reviews[review.ID] = bareReview(*review)
	return nil
}

func (s *Store) GetReviewByID(ctx context.Context, id uint) (*entities.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r = s.hydrateReview(r)
	return &r, nil
}

func (s *Store) GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]entities.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reviews := s.reviewsWhere(func(r entities.Review) bool {
		return matches(filter.ID, r.ID) && matches(filter.RecipeID, r.RecipeID) && matches(filter.UserID, r.UserID)
	})
	for i := range reviews {
		reviews[i] = s.hydrateReview(reviews[i])
	}
	return reviews, nil
}

func (s *Store) UpdateReview(ctx context.Context, review *entities.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	review.UpdatedAt = s.now()
	s.reviews[review.ID] = bareReview(*review)
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.reviews, id)
	return nil
}
