package service_test

import (
	"errors"
	"testing"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/apperrors"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/testutil"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/validation"
)

func TestSpaceService_GetSpaces(t *testing.T) {
	t.Run("returns empty slice when no spaces exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSpaceService(t, db)

		// Execute
		spaces, err := svc.GetSpaces()

		// Assert
		if err != nil {
			t.Fatalf("GetSpaces() returned unexpected error: %v", err)
		}

		if len(spaces) != 0 {
			t.Errorf("Expected empty slice, got %d spaces", len(spaces))
		}
	})

	t.Run("returns all spaces", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSpaceService(t, db)

		s1 := testutil.CreateSpace(t, db, "Family Office")
		s2 := testutil.CreateSpace(t, db, "Angel Syndicate")

		// Execute
		spaces, err := svc.GetSpaces()

		// Assert
		if err != nil {
			t.Fatalf("GetSpaces() returned unexpected error: %v", err)
		}

		if len(spaces) != 2 {
			t.Fatalf("Expected 2 spaces, got %d", len(spaces))
		}

		found := map[string]bool{}
		for _, s := range spaces {
			found[s.ID] = true
		}
		if !found[s1.ID] || !found[s2.ID] {
			t.Errorf("Expected both spaces in results, got %v", spaces)
		}
	})
}

func TestSpaceService_GetSpace(t *testing.T) {
	t.Run("returns space by ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSpaceService(t, db)

		created := testutil.CreateSpace(t, db, "Family Office")

		space, err := svc.GetSpace(created.ID)
		if err != nil {
			t.Fatalf("GetSpace() returned unexpected error: %v", err)
		}

		if space.ID != created.ID || space.Name != created.Name {
			t.Errorf("Expected space %+v, got %+v", created, space)
		}
	})

	t.Run("returns ErrSpaceNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSpaceService(t, db)

		_, err := svc.GetSpace(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrSpaceNotFound) {
			t.Errorf("Expected ErrSpaceNotFound, got %v", err)
		}
	})
}

func TestSpaceService_CreateSpace(t *testing.T) {
	t.Run("creates space and assigns ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSpaceService(t, db)

		space, err := svc.CreateSpace(request.CreateSpaceRequest{Name: "New Space"})
		if err != nil {
			t.Fatalf("CreateSpace() returned unexpected error: %v", err)
		}

		if space.ID == "" {
			t.Error("Expected generated ID, got empty string")
		}
		if space.Name != "New Space" {
			t.Errorf("Expected name 'New Space', got %q", space.Name)
		}

		testutil.AssertRowCount(t, db, "space", 1)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSpaceService(t, db)

		_, err := svc.CreateSpace(request.CreateSpaceRequest{Name: "   "})

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if _, ok := vErr.Fields["name"]; !ok {
			t.Errorf("Expected error on field 'name', got %v", vErr.Fields)
		}

		testutil.AssertRowCount(t, db, "space", 0)
	})
}
