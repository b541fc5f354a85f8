package store

import (
	"reflect"
	"testing"

	"github.com/jinzhu/gorm"

	"reposteria/internal/database"
	"reposteria/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A fresh pool connection would see an empty in-memory database.
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestIngredientStoreSequentialIDs(t *testing.T) {
	s := NewIngredientStore(testDB(t))

	for i, name := range []string{"Harina", "Azúcar", "Huevos"} {
		ing := models.Ingredient{Name: name, Unit: "kg", PricePerUnit: 1}
		if err := s.Create(&ing); err != nil {
			t.Fatalf("Create(%q) failed: %v", name, err)
		}
		if ing.ID != i+1 {
			t.Errorf("Create(%q) assigned id %d, want %d", name, ing.ID, i+1)
		}
	}

	// Removing the highest id frees it for the next create (max+1 contract).
	if _, err := s.Delete(3); err != nil {
		t.Fatalf("Delete(3) failed: %v", err)
	}
	ing := models.Ingredient{Name: "Mantequilla", Unit: "g", PricePerUnit: 0.05}
	if err := s.Create(&ing); err != nil {
		t.Fatalf("Create after delete failed: %v", err)
	}
	if ing.ID != 3 {
		t.Errorf("next id after deleting the max = %d, want 3", ing.ID)
	}
}

func TestIngredientStoreCRUD(t *testing.T) {
	s := NewIngredientStore(testDB(t))

	ing := models.Ingredient{Name: "Harina", Unit: "kg", Stock: 20, PricePerUnit: 2.5, ImageURL: "harina.png"}
	if err := s.Create(&ing); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get(ing.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if *got != ing {
		t.Errorf("Get = %+v, want %+v", *got, ing)
	}

	updated := models.Ingredient{Name: "Harina integral", Unit: "kg", Stock: 12, PricePerUnit: 3}
	if err := s.Update(ing.ID, &updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ID != ing.ID {
		t.Errorf("Update changed the id to %d", updated.ID)
	}
	got, err = s.Get(ing.ID)
	if err != nil {
		t.Fatalf("Get after update failed: %v", err)
	}
	if got.Name != "Harina integral" || got.PricePerUnit != 3 {
		t.Errorf("Get after update = %+v", *got)
	}

	deleted, err := s.Delete(ing.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Name != "Harina integral" {
		t.Errorf("Delete returned %+v", *deleted)
	}
	if _, err := s.Get(ing.ID); err != ErrNotFound {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestIngredientStoreNotFound(t *testing.T) {
	s := NewIngredientStore(testDB(t))

	if _, err := s.Get(99); err != ErrNotFound {
		t.Errorf("Get(99) = %v, want ErrNotFound", err)
	}
	if err := s.Update(99, &models.Ingredient{Name: "x", Unit: "kg"}); err != ErrNotFound {
		t.Errorf("Update(99) = %v, want ErrNotFound", err)
	}
	if _, err := s.Delete(99); err != ErrNotFound {
		t.Errorf("Delete(99) = %v, want ErrNotFound", err)
	}
}

func TestServiceStoreCRUD(t *testing.T) {
	s := NewServiceStore(testDB(t))

	svc := models.Service{Name: "Electricidad", CostPerMinute: 5}
	if err := s.Create(&svc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if svc.ID != 1 {
		t.Errorf("first service id = %d, want 1", svc.ID)
	}

	got, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CostPerMinute != 5 {
		t.Errorf("Get = %+v", *got)
	}

	if _, err := s.Get(2); err != ErrNotFound {
		t.Errorf("Get(2) = %v, want ErrNotFound", err)
	}
}

func TestRecipeStoreRoundTrip(t *testing.T) {
	s := NewRecipeStore(testDB(t))

	recipe := models.Recipe{
		Name:                "Torta de chocolate",
		PrepMinutes:         45,
		ProfitMarginPercent: 30,
		Ingredients:         models.IngredientLines{{IngredientID: 1, Quantity: 0.5}, {IngredientID: 2, Quantity: 3}},
		Services:            models.ServiceLines{{ServiceID: 1, Minutes: 40}},
		Steps:               models.StringSlice{"Mezclar", "Hornear", "Decorar"},
		PhotoPath:           "torta.jpg",
	}
	if err := s.Create(&recipe); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get(recipe.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !reflect.DeepEqual(got.Ingredients, recipe.Ingredients) {
		t.Errorf("Ingredients = %+v, want %+v", got.Ingredients, recipe.Ingredients)
	}
	if !reflect.DeepEqual(got.Services, recipe.Services) {
		t.Errorf("Services = %+v, want %+v", got.Services, recipe.Services)
	}
	if !reflect.DeepEqual(got.Steps, recipe.Steps) {
		t.Errorf("Steps = %+v, want %+v", got.Steps, recipe.Steps)
	}
	if got.Name != recipe.Name || got.PrepMinutes != 45 {
		t.Errorf("Get = %+v", *got)
	}
}

func TestRecipeStoreEmptyLines(t *testing.T) {
	s := NewRecipeStore(testDB(t))

	recipe := models.Recipe{Name: "Minimal", Ingredients: models.IngredientLines{}, Services: models.ServiceLines{}, Steps: models.StringSlice{}}
	if err := s.Create(&recipe); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get(recipe.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Ingredients) != 0 || len(got.Services) != 0 || len(got.Steps) != 0 {
		t.Errorf("empty lines should round-trip empty, got %+v", *got)
	}
}

func TestSnapshot(t *testing.T) {
	db := testDB(t)
	ingredients := NewIngredientStore(db)
	services := NewServiceStore(db)

	ing := models.Ingredient{Name: "Harina", Unit: "kg", PricePerUnit: 2}
	if err := ingredients.Create(&ing); err != nil {
		t.Fatalf("Create ingredient failed: %v", err)
	}
	svc := models.Service{Name: "Gas", CostPerMinute: 1.2}
	if err := services.Create(&svc); err != nil {
		t.Fatalf("Create service failed: %v", err)
	}

	snap, err := Snapshot(ingredients, services)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Ingredients[ing.ID].PricePerUnit != 2 {
		t.Errorf("snapshot ingredient = %+v", snap.Ingredients[ing.ID])
	}
	if snap.Services[svc.ID].CostPerMinute != 1.2 {
		t.Errorf("snapshot service = %+v", snap.Services[svc.ID])
	}
}
