package services

import (
	"testing"
	"time"

	"caltrack/models"
	"caltrack/storage"
	"caltrack/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*MealService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))

	return NewMealService(storage.NewMealStore(db), storage.NewUserStore(db)), db
}

func createUser(t *testing.T, db *gorm.DB, email string, maxCalorie *float64, super bool) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hash", MaxCalorie: maxCalorie, IsSuperUser: super}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func limit(v float64) *float64 { return &v }

func TestCreateSnapshotsOwnerFields(t *testing.T) {
	svc, db := newTestService(t)
	owner := createUser(t, db, "a@example.com", limit(2000), false)

	meal, err := svc.Create(owner.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, meal.UserID)
	assert.Equal(t, "Rice", meal.FoodName)
	assert.Equal(t, 200.0, meal.Calorie)
	require.NotNil(t, meal.MaxCalorie)
	assert.Equal(t, 2000.0, *meal.MaxCalorie)
	assert.False(t, meal.IsSuperUser)
	assert.Equal(t, utils.FormatDay(time.Now()), meal.Day)
}

func TestCreateUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(99, MealInput{FoodName: "Rice", Calorie: 200})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListScopedToOwner(t *testing.T) {
	svc, db := newTestService(t)
	alice := createUser(t, db, "alice@example.com", nil, false)
	bob := createUser(t, db, "bob@example.com", nil, false)
	admin := createUser(t, db, "admin@example.com", nil, true)

	_, err := svc.Create(alice.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, MealInput{FoodName: "Pasta", Calorie: 400})
	require.NoError(t, err)

	aliceMeals, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceMeals, 1)
	assert.Equal(t, "Rice", aliceMeals[0].FoodName)

	adminMeals, err := svc.List(admin.ID)
	require.NoError(t, err)
	assert.Len(t, adminMeals, 2)
}

func TestListNewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	owner := createUser(t, db, "a@example.com", nil, false)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"breakfast", "lunch", "dinner"} {
		meal := models.Meal{UserID: owner.ID, FoodName: name, Calorie: 100}
		meal.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(&meal).Error)
	}

	meals, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "dinner", meals[0].FoodName)
	assert.Equal(t, "breakfast", meals[2].FoodName)
}

func TestGetHidesForeignMeals(t *testing.T) {
	svc, db := newTestService(t)
	alice := createUser(t, db, "alice@example.com", nil, false)
	bob := createUser(t, db, "bob@example.com", nil, false)

	meal, err := svc.Create(alice.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	// not-found, never forbidden: existence must not leak
	_, err = svc.Get(bob.ID, meal.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := svc.Get(alice.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal.ID, got.ID)
}

func TestSuperUserAccessesAnyMeal(t *testing.T) {
	svc, db := newTestService(t)
	alice := createUser(t, db, "alice@example.com", limit(2000), false)
	admin := createUser(t, db, "admin@example.com", nil, true)

	meal, err := svc.Create(alice.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	_, err = svc.Get(admin.ID, meal.ID)
	require.NoError(t, err)

	updated, err := svc.Update(admin.ID, meal.ID, MealInput{FoodName: "Brown Rice", Calorie: 220})
	require.NoError(t, err)
	assert.Equal(t, "Brown Rice", updated.FoodName)

	require.NoError(t, svc.Delete(admin.ID, meal.ID))
}

func TestUpdateRefreshesOwnerMaxCalorie(t *testing.T) {
	svc, db := newTestService(t)
	owner := createUser(t, db, "a@example.com", limit(2000), false)

	meal, err := svc.Create(owner.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	// the directory limit changed since the meal was logged
	require.NoError(t, db.Model(owner).Update("max_calorie", 1800.0).Error)

	updated, err := svc.Update(owner.ID, meal.ID, MealInput{FoodName: "Rice", Calorie: 210})
	require.NoError(t, err)
	require.NotNil(t, updated.MaxCalorie)
	assert.Equal(t, 1800.0, *updated.MaxCalorie)
}

func TestSuperUserUpdateLeavesMaxCalorie(t *testing.T) {
	svc, db := newTestService(t)
	alice := createUser(t, db, "alice@example.com", limit(2000), false)
	admin := createUser(t, db, "admin@example.com", limit(9000), true)

	meal, err := svc.Create(alice.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	updated, err := svc.Update(admin.ID, meal.ID, MealInput{FoodName: "Rice", Calorie: 210})
	require.NoError(t, err)
	require.NotNil(t, updated.MaxCalorie)
	assert.Equal(t, 2000.0, *updated.MaxCalorie)
}

func TestUpdateKeepsCreationSnapshots(t *testing.T) {
	svc, db := newTestService(t)
	owner := createUser(t, db, "a@example.com", nil, false)

	meal := models.Meal{UserID: owner.ID, FoodName: "Rice", Calorie: 200, Day: "2024-03-01"}
	require.NoError(t, db.Create(&meal).Error)

	updated, err := svc.Update(owner.ID, meal.ID, MealInput{FoodName: "Pasta", Calorie: 400})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", updated.Day)
	assert.False(t, updated.IsSuperUser)
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestUpdateOmitsEmptyFields(t *testing.T) {
	svc, db := newTestService(t)
	owner := createUser(t, db, "a@example.com", nil, false)

	meal, err := svc.Create(owner.ID, MealInput{FoodName: "Rice", Calorie: 200, Description: "lunch"})
	require.NoError(t, err)

	// zero calorie and empty description are treated as absent, not cleared
	updated, err := svc.Update(owner.ID, meal.ID, MealInput{FoodName: "Pasta"})
	require.NoError(t, err)
	assert.Equal(t, "Pasta", updated.FoodName)
	assert.Equal(t, 200.0, updated.Calorie)
	assert.Equal(t, "lunch", updated.Description)
}

func TestUpdateByNonOwner(t *testing.T) {
	svc, db := newTestService(t)
	alice := createUser(t, db, "alice@example.com", nil, false)
	bob := createUser(t, db, "bob@example.com", nil, false)

	meal, err := svc.Create(alice.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	_, err = svc.Update(bob.ID, meal.ID, MealInput{FoodName: "Pasta", Calorie: 400})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := svc.Get(alice.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.FoodName)
}

func TestDeleteByNonOwner(t *testing.T) {
	svc, db := newTestService(t)
	alice := createUser(t, db, "alice@example.com", nil, false)
	bob := createUser(t, db, "bob@example.com", nil, false)

	meal, err := svc.Create(alice.ID, MealInput{FoodName: "Rice", Calorie: 200})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(bob.ID, meal.ID), storage.ErrNotFound)

	_, err = svc.Get(alice.ID, meal.ID)
	require.NoError(t, err, "meal must survive a denied delete")
}

func TestDeleteMissingMeal(t *testing.T) {
	svc, db := newTestService(t)
	owner := createUser(t, db, "a@example.com", nil, false)

	assert.ErrorIs(t, svc.Delete(owner.ID, 42), storage.ErrNotFound)
}
